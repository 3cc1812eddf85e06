package corpus

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// ParseCUE compiles a CUE corpus and reads its questions list.
//
// The file is evaluated as a whole, so constraints and shared definitions
// may be used to build entries. Every question must be concrete.
func ParseCUE(path string, data []byte) ([]Question, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, cueLoadError(path, err)
	}

	list := value.LookupPath(cue.ParsePath("questions"))
	if !list.Exists() {
		return nil, nil
	}

	iter, err := list.List()
	if err != nil {
		return nil, &LoadError{
			Code:    ErrCodeInvalidType,
			Message: fmt.Sprintf("questions must be a list: %v", err),
			Path:    path,
			Pos:     list.Pos(),
		}
	}

	var (
		records   []Record
		positions []token.Pos
	)
	for iter.Next() {
		v := iter.Value()
		r, le := decodeRecord(v)
		if le != nil {
			le.Path = path
			le.Message = fmt.Sprintf("questions[%s]: %s", iter.Selector(), le.Message)
			return nil, le
		}
		records = append(records, r)
		positions = append(positions, v.Pos())
	}

	return BuildAll(records, func(i int, le *LoadError) {
		le.Path = path
		le.Pos = positions[i]
	})
}

func decodeRecord(v cue.Value) (Record, *LoadError) {
	var r Record
	var le *LoadError

	str := func(field string, required bool) string {
		if le != nil {
			return ""
		}
		fv := v.LookupPath(cue.ParsePath(field))
		if !fv.Exists() {
			if required {
				le = &LoadError{Code: ErrCodeMissingID, Message: fmt.Sprintf("missing field %q", field), Pos: v.Pos()}
			}
			return ""
		}
		s, err := fv.String()
		if err != nil {
			le = &LoadError{Code: ErrCodeInvalidType, Message: fmt.Sprintf("%s: %v", field, err), Pos: fv.Pos()}
			return ""
		}
		return s
	}

	r.ID = str("id", true)
	r.ImageID = str("image_id", false)
	r.Text = str("text", false)
	r.Parse = str("parse", false)
	if le != nil {
		return Record{}, le
	}

	rel := v.LookupPath(cue.ParsePath("relations"))
	if rel.Exists() {
		iter, err := rel.List()
		if err != nil {
			return Record{}, &LoadError{Code: ErrCodeInvalidType, Message: fmt.Sprintf("relations: %v", err), Pos: rel.Pos()}
		}
		for iter.Next() {
			s, err := iter.Value().String()
			if err != nil {
				return Record{}, &LoadError{
					Code:    ErrCodeInvalidType,
					Message: fmt.Sprintf("relations[%s]: %v", iter.Selector(), err),
					Pos:     iter.Value().Pos(),
				}
			}
			r.Relations = append(r.Relations, s)
		}
	}
	return r, nil
}

// cueLoadError keeps the position of the first CUE error.
func cueLoadError(path string, err error) *LoadError {
	le := &LoadError{
		Code:    ErrCodeParseFailed,
		Message: err.Error(),
		Path:    path,
	}
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return le
	}
	first := errs[0]
	le.Message = first.Error()
	if positions := errors.Positions(first); len(positions) > 0 {
		le.Pos = positions[0]
	}
	return le
}
