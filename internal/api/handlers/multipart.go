package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Максимальный размер multipart тела: иконки и документы небольшие
const maxMultipartMemory = 10 << 20

// ErrMissingPart возвращается, когда обязательная часть формы отсутствует
var ErrMissingPart = errors.New("handlers: required form part is missing")

// MultipartField описывает одну ожидаемую часть multipart формы
// Decode получает сырые байты части; для текстовых полей это строка в байтах
type MultipartField struct {
	Required bool
	Decode   func(data []byte) error
}

// DecodeMultipart разбирает multipart форму по схеме полей
// Неизвестные части пропускаются; отсутствие обязательной части - ошибка
func DecodeMultipart(r *http.Request, schema map[string]MultipartField) error {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return fmt.Errorf("handlers: parse multipart form: %w", err)
	}

	seen := make(map[string]bool, len(schema))

	for name, values := range r.MultipartForm.Value {
		field, ok := schema[name]
		if !ok {
			continue
		}
		if len(values) == 0 {
			continue
		}
		if err := field.Decode([]byte(values[0])); err != nil {
			return fmt.Errorf("handlers: decode form field %q: %w", name, err)
		}
		seen[name] = true
	}

	for name, files := range r.MultipartForm.File {
		field, ok := schema[name]
		if !ok {
			continue
		}
		if len(files) == 0 {
			continue
		}
		f, err := files[0].Open()
		if err != nil {
			return fmt.Errorf("handlers: open form file %q: %w", name, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("handlers: read form file %q: %w", name, err)
		}
		if err := field.Decode(data); err != nil {
			return fmt.Errorf("handlers: decode form file %q: %w", name, err)
		}
		seen[name] = true
	}

	for name, field := range schema {
		if field.Required && !seen[name] {
			return fmt.Errorf("%w: %s", ErrMissingPart, name)
		}
	}

	return nil
}
