package repository

import "errors"

var (
	// ErrRepositoryNotInitialized indica que InitRepositories no se ejecutó.
	ErrRepositoryNotInitialized = errors.New("repositorio no inicializado")

	// ErrNombreRequerido indica que falta el nombre del cliente.
	ErrNombreRequerido = errors.New("el nombre es obligatorio")

	// ErrClienteDuplicado indica que ya existe un cliente con ese nombre
	// para el mismo usuario (comparación insensible a mayúsculas).
	ErrClienteDuplicado = errors.New("ya existe un cliente con ese nombre")

	// ErrClienteNoEncontrado indica que el cliente no existe o no pertenece
	// al usuario que lo pide.
	ErrClienteNoEncontrado = errors.New("cliente no encontrado")

	// ErrPlataformaInvalida indica una etiqueta de plataforma desconocida.
	ErrPlataformaInvalida = errors.New("plataforma desconocida")

	// ErrMetodoPagoInvalido indica un método de pago desconocido.
	ErrMetodoPagoInvalido = errors.New("método de pago desconocido")

	// ErrMontoInvalido indica montos o comisión negativos.
	ErrMontoInvalido = errors.New("los montos no pueden ser negativos")
)
