// Package sheet lee ficheros de proveedores (CSV o XLSX) y devuelve la
// rejilla de celdas que consume el normalizador.
package sheet

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

var (
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrEmptySheet      = errors.New("sheet has no rows")
	ErrUnreadable      = errors.New("unreadable file")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Extensions devuelve las extensiones aceptadas
func Extensions() []string {
	return []string{".csv", ".txt", ".xlsx", ".xlsm"}
}

// Read elige el lector según la extensión del nombre de fichero
func Read(name string, r io.Reader) ([][]any, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return ReadCSV(r)
	case ".xlsx", ".xlsm":
		return ReadXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFile, filepath.Ext(name))
	}
}

// ReadCSV detecta el separador y decodifica Windows-1252 si el contenido no es UTF-8
func ReadCSV(r io.Reader) ([][]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read csv: %w", ErrUnreadable, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		if data, err = charmap.Windows1252.NewDecoder().Bytes(data); err != nil {
			return nil, fmt.Errorf("%w: decode csv: %w", ErrUnreadable, err)
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: read csv: %w", ErrUnreadable, err)
	}
	return toGrid(records)
}

// ReadXLSX lee la primera hoja del libro
func ReadXLSX(r io.Reader) ([][]any, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open xlsx: %w", ErrUnreadable, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}
	// Valor almacenado, no el texto con formato: "#,##0.00" daría "1,250.00"
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %w", ErrUnreadable, sheets[0], err)
	}
	return toGrid(rows)
}

// sniffDelimiter elige entre coma, punto y coma y tabulador según la primera línea
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	best, bestCount := ',', 0
	for _, d := range []rune{';', '\t', ','} {
		if n := bytes.Count(line, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

// toGrid convierte filas de texto en celdas; las vacías quedan a nil
func toGrid(rows [][]string) ([][]any, error) {
	grid := make([][]any, 0, len(rows))
	nonEmpty := 0
	for _, row := range rows {
		cells := make([]any, len(row))
		blank := true
		for i, v := range row {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			cells[i] = v
			blank = false
		}
		if !blank {
			nonEmpty++
		}
		grid = append(grid, cells)
	}
	if nonEmpty == 0 {
		return nil, ErrEmptySheet
	}
	return grid, nil
}
