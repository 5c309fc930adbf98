package tabular

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRead_CSV(t *testing.T) {
	csvData := "Date,Person Name,Time In\n" +
		"01/02/2023,\"Dela Cruz, Juan\",08:00\n" +
		"01/03/2023,Maria Santos,08:15\n"

	rows, err := Read(strings.NewReader(csvData), "punches.csv")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Date", "Person Name", "Time In"}, rows[0])
	assert.Equal(t, "Dela Cruz, Juan", rows[1][1])
}

func TestRead_CSVWithBOM(t *testing.T) {
	csvData := "\uFEFFDate,Name\n01/02/2023,Juan\n"
	rows, err := Read(strings.NewReader(csvData), "export.csv")
	require.NoError(t, err)
	assert.Equal(t, "Date", rows[0][0], "BOM must be stripped")
}

func TestRead_CSVRaggedRows(t *testing.T) {
	csvData := "a,b,c\n1,2\n1,2,3,4\n"
	rows, err := Read(strings.NewReader(csvData), "ragged.csv")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Len(t, rows[1], 2)
	assert.Len(t, rows[2], 4)
}

func TestRead_Spreadsheet(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "A1", "Date"))
	require.NoError(t, f.SetCellValue(sheet, "B1", "Employee ID"))
	require.NoError(t, f.SetCellValue(sheet, "A2", 44927)) // raw date serial
	require.NoError(t, f.SetCellValue(sheet, "B2", "E-001"))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := Read(&buf, "punches.xlsx")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "44927", rows[1][0], "cells must be read as raw values")
	assert.Equal(t, "E-001", rows[1][1])
}

func TestRead_UnsupportedExtension(t *testing.T) {
	_, err := Read(strings.NewReader("x"), "punches.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
