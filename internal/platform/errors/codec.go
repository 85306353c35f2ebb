package errors

import "tallybook/internal/core/codecerr"

// FromCodec maps codec errors onto the wire codes
// malformed input becomes a validation error on field, a bad strategy value
// an internal one. Anything else is returned unchanged
func FromCodec(err error, field string) error {
	if err == nil {
		return nil
	}
	if fe, ok := codecerr.AsFormat(err); ok {
		return &Error{code: ErrorCodeValidation, msg: fe.Error(), field: field, orig: err}
	}
	if codecerr.IsType(err) {
		return Wrap(err, ErrorCodeUnknown, "number strategy returned an unsupported value")
	}
	return err
}
