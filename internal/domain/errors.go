package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los handlers HTTP los traducen a códigos de estado con errors.Is.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el usuario, email o número legal ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Ingesta de inventario.
	ErrUnsupportedFile = errors.New("formato de archivo no soportado")
	ErrParse           = errors.New("no se pudo leer el archivo")
	ErrMissingActor    = errors.New("user id ausente o inválido")
	ErrTooManyUploads  = errors.New("demasiadas cargas concurrentes, intente más tarde")

	// OTP.
	ErrInvalidOTP = errors.New("OTP inválido o expirado")
)
