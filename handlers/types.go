package handlers

// ErrorResponse es el cuerpo de toda respuesta de error
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse es el cuerpo de confirmaciones sin datos
type MessageResponse struct {
	Message string `json:"message"`
}

const (
	msgCitaNoEncontrada = "Cita no encontrada"
	msgCitaEliminada    = "Cita eliminada correctamente"
	msgServidorOK       = "Servidor funcionando correctamente"
	msgContentType      = "Datos inválidos: se requiere Content-Type application/json"
)
