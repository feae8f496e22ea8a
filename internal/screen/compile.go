package screen

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/ampere07/operationmobileapp-sub006/internal/record"
)

// CompileScreen parses a CUE value into a Screen. Uses the CUE SDK's Go API
// directly (not CLI subprocess).
//
// The CUE value should be the screen struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`screen: applications: { ... }`)
//	scr, err := CompileScreen(v.LookupPath(cue.ParsePath("screen.applications")))
func CompileScreen(v cue.Value) (*Screen, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	scr := &Screen{Accessors: make(map[string]record.Accessor)}

	// Screen name comes from the struct label (the path selector).
	labels := v.Path().Selectors()
	if len(labels) > 0 {
		scr.Name = labels[len(labels)-1].String()
	}

	// Title (required)
	titleVal := v.LookupPath(cue.ParsePath("title"))
	if !titleVal.Exists() {
		return nil, &CompileError{Field: "title", Message: "title is required", Pos: v.Pos()}
	}
	title, err := titleVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	scr.Title = title

	// Columns (required, at least one)
	if err := parseColumns(v, scr); err != nil {
		return nil, err
	}
	if len(scr.Columns) == 0 {
		return nil, &CompileError{Field: "columns", Message: "at least one column is required", Pos: v.Pos()}
	}

	// Search fields (optional)
	searchVal := v.LookupPath(cue.ParsePath("search"))
	if searchVal.Exists() {
		iter, err := searchVal.List()
		if err != nil {
			return nil, formatCUEError(err)
		}
		for iter.Next() {
			f, err := iter.Value().String()
			if err != nil {
				return nil, formatCUEError(err)
			}
			scr.SearchFields = append(scr.SearchFields, f)
		}
	}

	// Category derivation (optional): either a field or an address split.
	catVal := v.LookupPath(cue.ParsePath("category"))
	if catVal.Exists() {
		if err := parseCategory(catVal, scr); err != nil {
			return nil, err
		}
	}

	// Extra accessors (optional) for derived keys outside the column set,
	// e.g. a category field that is never rendered as a column.
	accVal := v.LookupPath(cue.ParsePath("accessors"))
	if accVal.Exists() {
		iter, err := accVal.Fields()
		if err != nil {
			return nil, formatCUEError(err)
		}
		for iter.Next() {
			key := iter.Label()
			acc, err := parseAccessor(iter.Value())
			if err != nil {
				return nil, err
			}
			scr.Accessors[key] = acc
		}
	}

	// Page size (optional; 0 disables pagination).
	sizeVal := v.LookupPath(cue.ParsePath("page_size"))
	if sizeVal.Exists() {
		size, err := sizeVal.Int64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		scr.PageSize = int(size)
	}

	if err := scr.Validate(); err != nil {
		return nil, &CompileError{Field: "screen", Message: err.Error(), Pos: v.Pos()}
	}

	return scr, nil
}

// parseColumns extracts column declarations and their accessors.
func parseColumns(v cue.Value, scr *Screen) error {
	colsVal := v.LookupPath(cue.ParsePath("columns"))
	if !colsVal.Exists() {
		return nil
	}

	iter, err := colsVal.List()
	if err != nil {
		return formatCUEError(err)
	}

	for iter.Next() {
		colVal := iter.Value()

		key, err := colVal.LookupPath(cue.ParsePath("key")).String()
		if err != nil {
			return formatCUEError(err)
		}

		label, err := colVal.LookupPath(cue.ParsePath("label")).String()
		if err != nil {
			return formatCUEError(err)
		}

		col := Column{Key: key, Label: label}

		widthVal := colVal.LookupPath(cue.ParsePath("width"))
		if widthVal.Exists() {
			w, err := widthVal.Int64()
			if err != nil {
				return formatCUEError(err)
			}
			col.Width = int(w)
		}

		acc, err := parseAccessor(colVal)
		if err != nil {
			return err
		}
		if len(acc.Candidates) == 0 {
			// A column with no declared fields reads its own key.
			acc.Candidates = []string{key}
		}
		scr.Accessors[key] = acc

		scr.Columns = append(scr.Columns, col)
	}

	return nil
}

// parseAccessor reads the fields/kind pair off a column or accessor struct.
func parseAccessor(v cue.Value) (record.Accessor, error) {
	var acc record.Accessor

	fieldsVal := v.LookupPath(cue.ParsePath("fields"))
	if fieldsVal.Exists() {
		iter, err := fieldsVal.List()
		if err != nil {
			return acc, formatCUEError(err)
		}
		for iter.Next() {
			f, err := iter.Value().String()
			if err != nil {
				return acc, formatCUEError(err)
			}
			acc.Candidates = append(acc.Candidates, f)
		}
	}

	kindVal := v.LookupPath(cue.ParsePath("kind"))
	if kindVal.Exists() {
		kind, err := kindVal.String()
		if err != nil {
			return acc, formatCUEError(err)
		}
		if !record.ValidKinds[record.Kind(kind)] {
			return acc, &CompileError{
				Field:   "kind",
				Message: fmt.Sprintf("unknown accessor kind %q", kind),
				Pos:     kindVal.Pos(),
			}
		}
		acc.Kind = record.Kind(kind)
	}

	return acc, nil
}

// parseCategory reads the category derivation: either {field: "city"} or
// {address_field: "address", address_segment: 2}.
func parseCategory(v cue.Value, scr *Screen) error {
	fieldVal := v.LookupPath(cue.ParsePath("field"))
	if fieldVal.Exists() {
		f, err := fieldVal.String()
		if err != nil {
			return formatCUEError(err)
		}
		scr.CategoryField = f
	}

	addrVal := v.LookupPath(cue.ParsePath("address_field"))
	if addrVal.Exists() {
		f, err := addrVal.String()
		if err != nil {
			return formatCUEError(err)
		}
		scr.AddressField = f

		segVal := v.LookupPath(cue.ParsePath("address_segment"))
		if segVal.Exists() {
			seg, err := segVal.Int64()
			if err != nil {
				return formatCUEError(err)
			}
			scr.AddressSegment = int(seg)
		}
	}

	if scr.CategoryField == "" && scr.AddressField == "" {
		return &CompileError{
			Field:   "category",
			Message: "category requires either field or address_field",
			Pos:     v.Pos(),
		}
	}

	return nil
}

// CompileError represents a compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
