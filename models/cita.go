package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cita representa un documento de la colección citas
type Cita struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Nombre      string             `json:"nombre" bson:"nombre"`
	Correo      string             `json:"correo" bson:"correo"`
	Fecha       time.Time          `json:"fecha" bson:"fecha"`
	Hora        string             `json:"hora" bson:"hora"`
	Descripcion string             `json:"descripcion,omitempty" bson:"descripcion,omitempty"`
}

// CitaRequest representa el cuerpo de creación o actualización de una cita.
// Los punteros permiten distinguir un campo ausente de uno vacío.
type CitaRequest struct {
	Nombre      *string `json:"nombre"`
	Correo      *string `json:"correo"`
	Fecha       *string `json:"fecha"`
	Hora        *string `json:"hora"`
	Descripcion *string `json:"descripcion"`
}

// Formatos aceptados para el campo fecha
var formatosFecha = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParsearFecha interpreta una fecha en cualquiera de los formatos aceptados,
// normalizada a UTC y truncada a milisegundos, la precisión de BSON.
func ParsearFecha(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range formatosFecha {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Millisecond), true
		}
	}
	return time.Time{}, false
}

// NuevaCita construye una cita a partir de una solicitud ya validada en modo completo.
func NuevaCita(req CitaRequest) Cita {
	c := Cita{ID: primitive.NewObjectID()}
	req.AplicarA(&c)
	return c
}

// AplicarA copia sobre c los campos presentes en la solicitud.
// Se asume que la solicitud pasó ValidarCita.
func (r CitaRequest) AplicarA(c *Cita) {
	if r.Nombre != nil {
		c.Nombre = *r.Nombre
	}
	if r.Correo != nil {
		c.Correo = *r.Correo
	}
	if r.Fecha != nil {
		c.Fecha, _ = ParsearFecha(*r.Fecha)
	}
	if r.Hora != nil {
		c.Hora = *r.Hora
	}
	if r.Descripcion != nil {
		c.Descripcion = *r.Descripcion
	}
}

// Cambios devuelve los campos presentes indexados por su nombre de almacenamiento.
// Fecha se entrega ya convertida a time.Time.
func (r CitaRequest) Cambios() map[string]any {
	cambios := make(map[string]any, 5)
	if r.Nombre != nil {
		cambios["nombre"] = *r.Nombre
	}
	if r.Correo != nil {
		cambios["correo"] = *r.Correo
	}
	if r.Fecha != nil {
		f, _ := ParsearFecha(*r.Fecha)
		cambios["fecha"] = f
	}
	if r.Hora != nil {
		cambios["hora"] = *r.Hora
	}
	if r.Descripcion != nil {
		cambios["descripcion"] = *r.Descripcion
	}
	return cambios
}
