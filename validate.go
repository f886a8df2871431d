package zupos

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"zupos/drawer"
	nt "zupos/entity"
)

const minNameLength = 2

// ValidateStore checks a store form, returning messages by field.
func ValidateStore(values drawer.Values) map[string]string {

	errs := map[string]string{}

	name := strings.TrimSpace(text(values["name"]))
	switch {
	case name == "":
		errs["name"] = "Name is required"
	case utf8.RuneCountInString(name) < minNameLength:
		errs["name"] = fmt.Sprintf("Name must be at least %d characters", minNameLength)
	}

	code := strings.TrimSpace(text(values["code"]))
	switch {
	case code == "":
		errs["code"] = "Code is required"
	case strings.IndexFunc(code, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0:
		errs["code"] = "Code must contain digits only"
	}

	transferType := text(values["transferType"])
	switch {
	case transferType == "":
		errs["transferType"] = "Transfer type is required"
	case !slices.Contains(TransferTypes, transferType):
		errs["transferType"] = fmt.Sprintf("Unknown transfer type %q", transferType)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// createValues are the form defaults for a new store.
func createValues() drawer.Values {
	return drawer.Values{
		"name":         "",
		"code":         "",
		"transferType": TransferTypes[0],
		"status":       true,
	}
}

// editValues are the form values of an existing store.
func editValues(sd nt.StoreDef) drawer.Values {
	return drawer.Values{
		"name":         sd.Name,
		"code":         sd.Code,
		"transferType": sd.TransferType,
		"status":       sd.Status,
	}
}

// applyValues copies form values onto sd, leaving fields without an input alone.
func applyValues(sd nt.StoreDef, values drawer.Values) nt.StoreDef {

	sd.Name = strings.TrimSpace(text(values["name"]))
	sd.Code = strings.TrimSpace(text(values["code"]))
	sd.TransferType = text(values["transferType"])
	if on, ok := values["status"].(bool); ok {
		sd.Status = on
	}
	return sd
}

func text(val any) string {
	str, _ := val.(string)
	return str
}
