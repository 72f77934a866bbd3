package export

import (
	"encoding/csv"
	"io"
)

// Filename suggested for the downloaded attachment.
const Filename = "filtered_contributions.csv"

var csvHeader = []string{"PreUser Name", "User Name", "Table", "Column", "Value", "Date Logged"}

// WriteCSV serializes rows as UTF-8 comma-delimited CSV with the fixed
// header, streaming into w.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.PreUserName,
			row.UserName,
			row.TableName,
			row.ColumnName,
			row.Value,
			row.LoggedAt,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
