package domain

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SqmPerPyeong - 1평 в квадратных метрах
const SqmPerPyeong = 3.3058

const (
	won  = 1
	man  = 10000 * won
	eok  = 10000 * man
	half = 0.5
)

var krPrinter = message.NewPrinter(language.Korean)

// RoundOneDecimal округляет до одного знака, половина - от нуля.
// Единая политика округления для обоих направлений перевода.
func RoundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

func SqmToPyeong(sqm float64) float64 {
	return RoundOneDecimal(sqm / SqmPerPyeong)
}

func PyeongToSqm(pyeong float64) float64 {
	return RoundOneDecimal(pyeong * SqmPerPyeong)
}

// IsKnownAreaUnit проверяет название единицы площади
func IsKnownAreaUnit(unit string) bool {
	return unit == AreaUnitSqm || unit == AreaUnitPyeong
}

// ConvertArea переводит площадь между ㎡ и 평
func ConvertArea(value float64, from, to string) (float64, error) {
	if !IsKnownAreaUnit(from) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, from)
	}
	if !IsKnownAreaUnit(to) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, to)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrInvalidAreaValue
	}

	var result float64
	switch {
	case from == to:
		result = RoundOneDecimal(value)
	case from == AreaUnitSqm:
		result = SqmToPyeong(value)
	default:
		result = PyeongToSqm(value)
	}
	// 평 -> ㎡ умножает, около MaxFloat64 результат уходит в Inf
	if math.IsInf(result, 0) {
		return 0, ErrInvalidAreaValue
	}
	return result, nil
}

// AreaIn возвращает площадь (исходно в ㎡) в запрошенной единице
func AreaIn(sqm float64, unit string) float64 {
	if unit == AreaUnitPyeong {
		return SqmToPyeong(sqm)
	}
	return sqm
}

// FormatArea: "84㎡", "25.4평" или "84㎡ (25.4평)"
func FormatArea(sqm float64, unit string) string {
	if sqm <= 0 {
		return "0㎡"
	}
	sqmText := strconv.FormatFloat(sqm, 'f', -1, 64) + "㎡"
	pyeongText := fmt.Sprintf("%.1f평", SqmToPyeong(sqm))

	switch unit {
	case AreaUnitSqm:
		return sqmText
	case AreaUnitPyeong:
		return pyeongText
	default:
		return fmt.Sprintf("%s (%s)", sqmText, pyeongText)
	}
}

// FormatKRW форматирует сумму в вонах: "8억 5000만원", "180만원", "1만 2,345원"
func FormatKRW(amount int64) string {
	if amount <= 0 {
		return "0원"
	}

	switch {
	case amount >= eok:
		eokPart := amount / eok
		manPart := (amount % eok) / man
		if manPart > 0 {
			return fmt.Sprintf("%d억 %d만원", eokPart, manPart)
		}
		return fmt.Sprintf("%d억원", eokPart)
	case amount >= man:
		manPart := amount / man
		remainder := amount % man
		if remainder == 0 {
			return fmt.Sprintf("%d만원", manPart)
		}
		return fmt.Sprintf("%d만 %s원", manPart, krPrinter.Sprintf("%d", remainder))
	default:
		return krPrinter.Sprintf("%d원", amount)
	}
}

// FormatManwon форматирует значение слайдера, заданное в 만원
func FormatManwon(value float64) string {
	switch {
	case value >= 10000:
		eokPart := int64(math.Floor(value / 10000))
		manPart := math.Mod(value, 10000)
		if manPart > 0 {
			return fmt.Sprintf("%d억 %s만원", eokPart, strconv.FormatFloat(manPart, 'f', -1, 64))
		}
		return fmt.Sprintf("%d억원", eokPart)
	case value >= 1:
		return strconv.FormatFloat(value, 'f', -1, 64) + "만원"
	default:
		return krPrinter.Sprintf("%d원", int64(math.Round(value*man)))
	}
}

// FormatParkingRatio: "주차불가", "1.2대/세대", "2세대당 1대"
func FormatParkingRatio(ratio float64) string {
	switch {
	case ratio <= 0:
		return "주차불가"
	case ratio >= 1:
		return fmt.Sprintf("%.1f대/세대", ratio)
	default:
		return fmt.Sprintf("%d세대당 1대", int(math.Floor(1/ratio+half)))
	}
}
