// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response and request-binding utilities shared by all
// endpoints. Every failure leaves a handler through fail(), which hands the
// error to middleware.Fail; handlers never pick status codes or error codes
// themselves.
//
// Example error response:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "code": "USER-DOCUMENT-NF-A01",
//	  "error": "Document not found",
//	  "detail": "Document with ID 3f0c2b8e-... does not exist.",
//	  "status": 404
//	}
//
// Example success response:
//
//	HTTP/1.1 200 OK
//	{ "id": "3f0c2b8e-...", "document_name": "Backend CV" }
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"

	"github.com/tbourn/go-career-backend/internal/apperr"
	"github.com/tbourn/go-career-backend/internal/http/middleware"
)

func init() {
	// Report fields by their JSON names and enable the notblank rule.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("notblank", validators.NotBlank)
	}
}

// fail aborts the request through the service-wide failure boundary.
func fail(c *gin.Context, err error) { middleware.Fail(c, err) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// MessageResponse is the body of operations that only report an outcome.
type MessageResponse struct {
	Message string `json:"message" example:"Document 3f0c2b8e-... deleted successfully."`
}

// bindJSON decodes the request body into dst and validates it with the gin
// binding validator. Decoding and validation problems are merged into one
// *apperr.ValidationError so a client sees every bad field at once. An
// oversized body is returned as is.
func bindJSON(c *gin.Context, dst any) error {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return err
	}
	decErr := json.NewDecoder(bytes.NewReader(body)).Decode(dst)

	var ute *json.UnmarshalTypeError
	if decErr != nil && !errors.As(decErr, &ute) {
		// Nothing usable was decoded; validating dst would only add noise.
		if verr := apperr.FromBinding(decErr); verr != nil {
			return verr
		}
		return decErr
	}
	if ute != nil {
		if errs := fieldTypeErrors(body, dst); len(errs) > 0 {
			decErr = errors.Join(errs...)
		}
	}

	if verr := apperr.FromBinding(errors.Join(decErr, binding.Validator.ValidateStruct(dst))); verr != nil {
		return verr
	}
	return nil
}

// fieldTypeErrors decodes each top-level member of body into its own copy of
// the matching field of dst and returns every type mismatch, in field order.
// encoding/json only reports the first one.
func fieldTypeErrors(body []byte, dst any) []error {
	var raw map[string]json.RawMessage
	if json.Unmarshal(body, &raw) != nil {
		return nil
	}
	t := reflect.TypeOf(dst)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var errs []error
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if !f.IsExported() || name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		member, found := raw[name]
		if !found {
			continue
		}
		var ute *json.UnmarshalTypeError
		if errors.As(json.Unmarshal(member, reflect.New(f.Type).Interface()), &ute) {
			if ute.Field == "" {
				ute.Field = name
			} else {
				ute.Field = name + "." + ute.Field
			}
			errs = append(errs, ute)
		}
	}
	return errs
}

// pathUUID returns the named path parameter, or a validation error when it is
// not a UUID.
func pathUUID(c *gin.Context, name string) (string, error) {
	v := c.Param(name)
	if _, err := uuid.Parse(v); err != nil {
		return "", apperr.Invalid(name, "Must be a valid UUID")
	}
	return v, nil
}
