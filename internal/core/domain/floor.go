package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type FloorKind string

const (
	FloorKindSingle FloorKind = "single"
	FloorKindRange  FloorKind = "range"
	FloorKindMin    FloorKind = "min"
)

// MaxFloorSentinel - верхняя граница для формы "N+" (N этаж и выше)
const MaxFloorSentinel = 999

// Сообщения валидации показываются пользователю как есть
const (
	FloorMsgInvalidFormat = "올바른 형식이 아닙니다. 예: 5/15, 10-12/20, 1, 8+, 1-3"
	FloorMsgRangeOrder    = "시작 층수는 끝 층수보다 작아야 합니다"
	FloorMsgExceedsTotal  = "현재 층수는 총 층수를 초과할 수 없습니다"
	FloorMsgValid         = "올바른 형식입니다"
)

var (
	floorCurrentTotalRe = regexp.MustCompile(`^(\d+)/(\d+)$`)
	floorRangeTotalRe   = regexp.MustCompile(`^(\d+)-(\d+)/(\d+)$`)
	floorSingleRe       = regexp.MustCompile(`^(\d+)$`)
	floorMinRe          = regexp.MustCompile(`^(\d+)\+$`)
	floorRangeRe        = regexp.MustCompile(`^(\d+)-(\d+)$`)
)

type FloorRange struct {
	Min int
	Max int
}

// Contains - целиком ли диапазон other лежит внутри r
func (r FloorRange) Contains(other FloorRange) bool {
	return other.Min >= r.Min && other.Max <= r.Max
}

// FloorDescriptor - разобранная строка этажа
type FloorDescriptor struct {
	Input       string
	Kind        FloorKind
	Current     FloorRange
	Total       *int
	Description string
}

// FloorValidationError несет сообщение для пользователя
type FloorValidationError struct {
	Input   string
	Message string
}

func (e *FloorValidationError) Error() string {
	return fmt.Sprintf("invalid floor descriptor %q: %s", e.Input, e.Message)
}

func newFloorError(input, msg string) *FloorValidationError {
	return &FloorValidationError{Input: input, Message: msg}
}

// ParseFloor разбирает строку вида 5/15, 10-12/20, 1, 8+, 1-3.
// Для пустой строки возвращает (nil, nil).
func ParseFloor(input string) (*FloorDescriptor, error) {
	value := strings.TrimSpace(input)
	if value == "" {
		return nil, nil
	}

	if m := floorCurrentTotalRe.FindStringSubmatch(value); m != nil {
		current, total, err := atoiAll(value, m[1], m[2])
		if err != nil {
			return nil, err
		}
		if current > total {
			return nil, newFloorError(value, FloorMsgExceedsTotal)
		}
		return &FloorDescriptor{
			Input:       value,
			Kind:        FloorKindSingle,
			Current:     FloorRange{Min: current, Max: current},
			Total:       &total,
			Description: fmt.Sprintf("%s층 (총 %s층)", m[1], m[2]),
		}, nil
	}

	if m := floorRangeTotalRe.FindStringSubmatch(value); m != nil {
		start, end, err := atoiAll(value, m[1], m[2])
		if err != nil {
			return nil, err
		}
		total, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, newFloorError(value, FloorMsgInvalidFormat)
		}
		if start >= end {
			return nil, newFloorError(value, FloorMsgRangeOrder)
		}
		if end > total {
			return nil, newFloorError(value, FloorMsgExceedsTotal)
		}
		return &FloorDescriptor{
			Input:       value,
			Kind:        FloorKindRange,
			Current:     FloorRange{Min: start, Max: end},
			Total:       &total,
			Description: fmt.Sprintf("%s~%s층 (총 %s층)", m[1], m[2], m[3]),
		}, nil
	}

	if m := floorMinRe.FindStringSubmatch(value); m != nil {
		floor, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, newFloorError(value, FloorMsgInvalidFormat)
		}
		return &FloorDescriptor{
			Input:       value,
			Kind:        FloorKindMin,
			Current:     FloorRange{Min: floor, Max: MaxFloorSentinel},
			Description: fmt.Sprintf("%s층 이상", m[1]),
		}, nil
	}

	if m := floorRangeRe.FindStringSubmatch(value); m != nil {
		start, end, err := atoiAll(value, m[1], m[2])
		if err != nil {
			return nil, err
		}
		if start >= end {
			return nil, newFloorError(value, FloorMsgRangeOrder)
		}
		return &FloorDescriptor{
			Input:       value,
			Kind:        FloorKindRange,
			Current:     FloorRange{Min: start, Max: end},
			Description: fmt.Sprintf("%s~%s층", m[1], m[2]),
		}, nil
	}

	if m := floorSingleRe.FindStringSubmatch(value); m != nil {
		floor, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, newFloorError(value, FloorMsgInvalidFormat)
		}
		return &FloorDescriptor{
			Input:       value,
			Kind:        FloorKindSingle,
			Current:     FloorRange{Min: floor, Max: floor},
			Description: fmt.Sprintf("%s층", m[1]),
		}, nil
	}

	return nil, newFloorError(value, FloorMsgInvalidFormat)
}

// ValidateFloor возвращает сообщение для пользователя и признак валидности.
// Пустая строка валидна, сообщение при этом пустое.
func ValidateFloor(input string) (bool, string) {
	if strings.TrimSpace(input) == "" {
		return true, ""
	}
	if _, err := ParseFloor(input); err != nil {
		if fe, ok := err.(*FloorValidationError); ok {
			return false, fe.Message
		}
		return false, FloorMsgInvalidFormat
	}
	return true, FloorMsgValid
}

// FormatFloor превращает "15/20" в "15층/20층", остальное в "N층"
func FormatFloor(floor string) string {
	value := strings.TrimSpace(floor)
	if value == "" {
		return ""
	}
	if current, total, ok := strings.Cut(value, "/"); ok {
		return fmt.Sprintf("%s층/%s층", current, total)
	}
	return value + "층"
}

func atoiAll(input, a, b string) (int, int, error) {
	x, errA := strconv.Atoi(a)
	y, errB := strconv.Atoi(b)
	if errA != nil || errB != nil {
		return 0, 0, newFloorError(input, FloorMsgInvalidFormat)
	}
	return x, y, nil
}
