package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/database/models"
)

// CoerceValue checks a raw submitted value against a column's declared
// datatype. Storage stays text either way; this is a boundary check only.
// Empty values pass: a blank form field is a legal ledger entry.
func CoerceValue(datatype models.Datatype, value string) error {
	if value == "" {
		return nil
	}

	switch datatype {
	case models.DatatypeString, "":
		return nil
	case models.DatatypeNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("%q is not a number", value)
		}
		return nil
	case models.DatatypeDate:
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return fmt.Errorf("%q is not a date (want YYYY-MM-DD)", value)
		}
		return nil
	case models.DatatypeBoolean:
		switch strings.ToLower(value) {
		case "true", "false", "1", "0", "yes", "no":
			return nil
		}
		return fmt.Errorf("%q is not a boolean", value)
	}

	return ErrInvalidDatatype
}
