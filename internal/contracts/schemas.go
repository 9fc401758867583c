package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"listing-service/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Корневые каталоги схем и суффиксы, которые получают их ключи
var schemaRoots = map[string]string{
	"events":   "Event",
	"requests": "Request",
}

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	var paths []string
	for root := range schemaRoots {
		err := fs.WalkDir(schemas.SchemasFS, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".json") {
				return nil
			}
			file, err := schemas.SchemasFS.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()

			// Добавляем все схемы как ресурсы, чтобы работали ссылки $ref между ними
			if err := compiler.AddResource(path, file); err != nil {
				return fmt.Errorf("failed to add schema resource %s: %w", path, err)
			}
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			log.Fatalf("error walking and adding schema resources: %v", err)
		}
	}

	for _, path := range paths {
		schema, err := compiler.Compile(path)
		if err != nil {
			log.Printf("WARNING: could not compile schema %s: %v. Skipping.", path, err)
			continue
		}
		key := generateKeyFromPath(path)
		if key == "" {
			log.Printf("WARNING: unexpected schema path %s. Skipping.", path)
			continue
		}
		compiledSchemas[key] = schema
	}
}

// generateKeyFromPath преобразует путь вида "events/property-favorited/v1.json"
// в ключ вида "PropertyFavoritedEvent/1.0.0", а "requests/add-favorite/v1.json"
// в "AddFavoriteRequest/1.0.0".
func generateKeyFromPath(path string) string {
	parts := strings.Split(strings.TrimSuffix(path, ".json"), "/")
	if len(parts) != 3 {
		return ""
	}
	suffix, ok := schemaRoots[parts[0]]
	if !ok {
		return ""
	}

	caser := cases.Title(language.English)

	var nameBuilder strings.Builder
	for _, p := range strings.Split(parts[1], "-") {
		nameBuilder.WriteString(caser.String(p))
	}
	nameBuilder.WriteString(suffix)

	version := strings.Replace(parts[2], "v", "", 1) + ".0.0"

	return fmt.Sprintf("%s/%s", nameBuilder.String(), version)
}

// Validate проверяет тело по схеме с ключом "<Name>/<version>"
func Validate(name, version string, body []byte) error {
	key := fmt.Sprintf("%s/%s", name, version)
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema '%s' version '%s' not found", name, version)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("message body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}

	return nil
}

// ValidateEvent - проверка исходящего события перед публикацией
func ValidateEvent(eventType, eventVersion string, body []byte) error {
	return Validate(eventType, eventVersion, body)
}

// ValidateRequest - проверка тела входящего HTTP-запроса
func ValidateRequest(requestType, requestVersion string, body []byte) error {
	return Validate(requestType, requestVersion, body)
}
