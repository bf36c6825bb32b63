package serviceerrors

import "errors"

type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindConflict
	KindUnprocessableEntity
	KindInvalidRequest
)

// ErrorCode identifies a business rule violation more precisely than its kind.
type ErrorCode string

const (
	CodeCustomerNotFound  ErrorCode = "CUSTOMER_NOT_FOUND"
	CodeNoProductsFound   ErrorCode = "NO_PRODUCTS_FOUND"
	CodeProductsNotFound  ErrorCode = "PRODUCTS_NOT_FOUND"
	CodeInsufficientStock ErrorCode = "INSUFFICIENT_STOCK"
	CodeStockConflict     ErrorCode = "STOCK_CONFLICT"
)

func IsOfKind(err error, kind ErrorKind) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Kind == kind
	}
	return false
}

func HasCode(err error, code ErrorCode) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Code == code
	}
	return false
}

type ServiceError struct {
	Kind    ErrorKind
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// WithCode returns a copy of e tagged with code.
func (e *ServiceError) WithCode(code ErrorCode) *ServiceError {
	return &ServiceError{Kind: e.Kind, Code: code, Message: e.Message}
}

func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *ServiceError {
	return &ServiceError{Kind: KindConflict, Message: message}
}

func NewUnprocessableEntityError(message string) *ServiceError {
	return &ServiceError{Kind: KindUnprocessableEntity, Message: message}
}

func NewInvalidRequestError(message string) *ServiceError {
	return &ServiceError{Kind: KindInvalidRequest, Message: message}
}
