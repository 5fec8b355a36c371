package core

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindMissingCredential
	KindNetworkOrBackendFailure
	KindNoUsablePayload
	KindInvalidInput
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingCredential:
		return "missing_credential"
	case KindNetworkOrBackendFailure:
		return "network_or_backend_failure"
	case KindNoUsablePayload:
		return "no_usable_payload"
	case KindInvalidInput:
		return "invalid_input"
	}
	return "none"
}

// OperationError is the only failure shape that leaves the façade.
// The cause is kept for server-side logging and is never rendered.
type OperationError struct {
	Kind  ErrorKind
	Mode  InteractionMode
	cause error
}

func (e *OperationError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s: %s", e.Mode, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Mode, e.Kind, e.cause)
}

func (e *OperationError) Unwrap() error {
	return e.cause
}

// Is matches any OperationError of the same kind.
func (e *OperationError) Is(target error) bool {
	t, ok := target.(*OperationError)
	return ok && t.Kind == e.Kind
}

var (
	ErrMissingCredential       = &OperationError{Kind: KindMissingCredential}
	ErrNetworkOrBackendFailure = &OperationError{Kind: KindNetworkOrBackendFailure}
	ErrNoUsablePayload         = &OperationError{Kind: KindNoUsablePayload}
)

func MissingCredential(cause error) *OperationError {
	return &OperationError{Kind: KindMissingCredential, cause: cause}
}

func BackendFailure(mode InteractionMode, cause error) *OperationError {
	return &OperationError{Kind: KindNetworkOrBackendFailure, Mode: mode, cause: cause}
}

func NoUsablePayload(mode InteractionMode, reason string) *OperationError {
	return &OperationError{Kind: KindNoUsablePayload, Mode: mode, cause: errors.New(reason)}
}

// ValidationError is a rejected precondition, raised before any request is built.
type ValidationError struct {
	Field    string
	Message  string
	TooLarge bool
}

func NewValidationError(field string, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// KindOf classifies err. Unknown errors count as backend failures.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return KindInvalidInput
	}
	return KindNetworkOrBackendFailure
}

// asOperationError keeps typed failures and folds anything else into a
// backend failure for mode.
func asOperationError(mode InteractionMode, err error) error {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		if opErr.Mode != mode {
			return &OperationError{Kind: opErr.Kind, Mode: mode, cause: opErr.cause}
		}
		return opErr
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return valErr
	}
	return BackendFailure(mode, err)
}

// Classify is asOperationError for callers outside the package.
func Classify(mode InteractionMode, err error) error {
	if err == nil {
		return nil
	}
	return asOperationError(mode, err)
}

const (
	msgTooLarge     = "A imagem deve ter no máximo 5MB."
	msgInvalidInput = "Não foi possível processar os dados enviados. Verifique e tente novamente."
	msgMissingKey   = "Chave de API não configurada. Configure uma chave para continuar."
	msgNoPayload    = "Não foi possível gerar uma resposta. Tente uma instrução diferente."
)

var backendMessages = map[InteractionMode]string{
	ModeChat:             "Ocorreu um erro ao processar sua mensagem. Tente novamente.",
	ModeHomeworkAnalysis: "Erro ao analisar a imagem. Tente novamente.",
	ModeImageGeneration:  "Erro ao gerar imagem. Tente descrever de outra forma ou verifique sua conexão.",
	ModeImageEditing:     "Erro ao editar imagem. Verifique sua conexão ou tente outra imagem.",
}

var noPayloadMessages = map[InteractionMode]string{
	ModeChat:             FallbackText,
	ModeHomeworkAnalysis: "Não foi possível analisar a imagem.",
	ModeImageGeneration:  "Nenhuma imagem gerada. Tente descrever de outra forma.",
	ModeImageEditing:     "Nenhuma imagem gerada. Tente uma instrução diferente.",
}

// UserMessage is the localized banner text for err. It never includes backend detail.
func UserMessage(mode InteractionMode, err error) string {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		if valErr.TooLarge {
			return msgTooLarge
		}
		return msgInvalidInput
	}
	switch KindOf(err) {
	case KindMissingCredential:
		return msgMissingKey
	case KindNoUsablePayload:
		if msg, ok := noPayloadMessages[mode]; ok {
			return msg
		}
		return msgNoPayload
	}
	if msg, ok := backendMessages[mode]; ok {
		return msg
	}
	return backendMessages[ModeChat]
}

// RefusalMessage renders advisory text returned in place of an image.
func RefusalMessage(text string) string {
	return "A IA respondeu com texto: " + text
}
