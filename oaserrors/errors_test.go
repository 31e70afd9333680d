package oaserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestUnrecognizedVersionError(t *testing.T) {
	t.Run("Error message with detail", func(t *testing.T) {
		err := &UnrecognizedVersionError{Detail: `no "openapi" or "swagger" key found`}
		expected := `unrecognized version: no "openapi" or "swagger" key found`
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message minimal", func(t *testing.T) {
		err := &UnrecognizedVersionError{}
		if err.Error() != "unrecognized version" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrUnrecognizedVersion", func(t *testing.T) {
		err := &UnrecognizedVersionError{}
		if !errors.Is(err, ErrUnrecognizedVersion) {
			t.Error("UnrecognizedVersionError should match ErrUnrecognizedVersion")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &UnrecognizedVersionError{}
		if errors.Is(err, ErrDanglingReference) {
			t.Error("UnrecognizedVersionError should not match ErrDanglingReference")
		}
	})

	t.Run("As extracts UnrecognizedVersionError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &UnrecognizedVersionError{Detail: "empty document"})
		var verErr *UnrecognizedVersionError
		if !errors.As(err, &verErr) {
			t.Fatal("errors.As should succeed")
		}
		if verErr.Detail != "empty document" {
			t.Errorf("unexpected detail: %s", verErr.Detail)
		}
	})
}

func TestDanglingReferenceError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &DanglingReferenceError{
			Path: "paths./pets.get.responses.200",
			Ref:  "#/components/schemas/Missing",
		}
		expected := "dangling reference at paths./pets.get.responses.200: #/components/schemas/Missing"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrDanglingReference", func(t *testing.T) {
		err := &DanglingReferenceError{Ref: "#/definitions/X"}
		if !errors.Is(err, ErrDanglingReference) {
			t.Error("DanglingReferenceError should match ErrDanglingReference")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &DanglingReferenceError{}
		if errors.Is(err, ErrUnrecognizedVersion) {
			t.Error("DanglingReferenceError should not match ErrUnrecognizedVersion")
		}
	})

	t.Run("As extracts DanglingReferenceError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &DanglingReferenceError{
			Path: "components.schemas.Pet.properties.owner",
			Ref:  "#/definitions/Owner",
		})
		var refErr *DanglingReferenceError
		if !errors.As(err, &refErr) {
			t.Fatal("errors.As should succeed")
		}
		if refErr.Ref != "#/definitions/Owner" {
			t.Errorf("unexpected ref: %s", refErr.Ref)
		}
	})
}

func TestMalformedOperationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &MalformedOperationError{
			Path:   "/pets",
			Method: "post",
			Detail: "two body parameters declared",
		}
		expected := "malformed operation post /pets: two body parameters declared"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrMalformedOperation", func(t *testing.T) {
		err := &MalformedOperationError{Method: "put"}
		if !errors.Is(err, ErrMalformedOperation) {
			t.Error("MalformedOperationError should match ErrMalformedOperation")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &MalformedOperationError{}
		if errors.Is(err, ErrUnsupportedConstruct) {
			t.Error("MalformedOperationError should not match ErrUnsupportedConstruct")
		}
	})

	t.Run("As extracts MalformedOperationError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &MalformedOperationError{
			Path:   "/widgets",
			Method: "put",
			Detail: "body and formData both present",
		})
		var opErr *MalformedOperationError
		if !errors.As(err, &opErr) {
			t.Fatal("errors.As should succeed")
		}
		if opErr.Path != "/widgets" {
			t.Errorf("unexpected path: %s", opErr.Path)
		}
	})
}

func TestUnsupportedConstructError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &UnsupportedConstructError{
			Path:   "components.schemas.Coord",
			Detail: "tuple with prefixItems has no lossless 2.0 form",
		}
		expected := "unsupported construct at components.schemas.Coord: tuple with prefixItems has no lossless 2.0 form"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrUnsupportedConstruct", func(t *testing.T) {
		err := &UnsupportedConstructError{}
		if !errors.Is(err, ErrUnsupportedConstruct) {
			t.Error("UnsupportedConstructError should match ErrUnsupportedConstruct")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &UnsupportedConstructError{}
		if errors.Is(err, ErrMalformedOperation) {
			t.Error("UnsupportedConstructError should not match ErrMalformedOperation")
		}
	})

	t.Run("As extracts UnsupportedConstructError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &UnsupportedConstructError{
			Path:   "components.schemas.Const",
			Detail: "const has no 2.0 equivalent, downgraded to single-value enum",
		})
		var constructErr *UnsupportedConstructError
		if !errors.As(err, &constructErr) {
			t.Fatal("errors.As should succeed")
		}
		if constructErr.Path != "components.schemas.Const" {
			t.Errorf("unexpected path: %s", constructErr.Path)
		}
	})
}

func TestUnknownSecuritySchemeError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &UnknownSecuritySchemeError{Name: "mutualTLS", Type: "mutualTLS"}
		expected := `unknown security scheme "mutualTLS" of type "mutualTLS"`
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrUnknownSecurityScheme", func(t *testing.T) {
		err := &UnknownSecuritySchemeError{Name: "x"}
		if !errors.Is(err, ErrUnknownSecurityScheme) {
			t.Error("UnknownSecuritySchemeError should match ErrUnknownSecurityScheme")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &UnknownSecuritySchemeError{}
		if errors.Is(err, ErrDanglingReference) {
			t.Error("UnknownSecuritySchemeError should not match ErrDanglingReference")
		}
	})

	t.Run("As extracts UnknownSecuritySchemeError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &UnknownSecuritySchemeError{
			Name: "legacyKey",
			Type: "unknown",
		})
		var schemeErr *UnknownSecuritySchemeError
		if !errors.As(err, &schemeErr) {
			t.Fatal("errors.As should succeed")
		}
		if schemeErr.Name != "legacyKey" {
			t.Errorf("unexpected name: %s", schemeErr.Name)
		}
	})
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrUnrecognizedVersion,
		ErrDanglingReference,
		ErrMalformedOperation,
		ErrUnsupportedConstruct,
		ErrUnknownSecurityScheme,
	}

	for i, s1 := range sentinels {
		for j, s2 := range sentinels {
			if i != j && errors.Is(s1, s2) {
				t.Errorf("sentinel errors should be distinct: %v should not match %v", s1, s2)
			}
		}
	}
}

func TestErrorChaining(t *testing.T) {
	t.Run("deeply wrapped DanglingReferenceError", func(t *testing.T) {
		refErr := &DanglingReferenceError{Path: "paths./pets.get", Ref: "#/definitions/Pet"}
		wrapped1 := fmt.Errorf("layer 1: %w", refErr)
		wrapped2 := fmt.Errorf("layer 2: %w", wrapped1)

		if !errors.Is(wrapped2, ErrDanglingReference) {
			t.Error("deeply wrapped DanglingReferenceError should match ErrDanglingReference")
		}

		var extracted *DanglingReferenceError
		if !errors.As(wrapped2, &extracted) {
			t.Fatal("errors.As should work through wrapping")
		}
		if extracted.Ref != "#/definitions/Pet" {
			t.Errorf("unexpected ref: %s", extracted.Ref)
		}
	})
}
