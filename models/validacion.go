package models

import (
	"fmt"
	"strings"
)

// CampoError describe un campo que no cumple el esquema de Cita
type CampoError struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// Validacion es el resultado de ValidarCita
type Validacion struct {
	Errores []CampoError `json:"errores"`
}

// Valida indica si no se encontraron errores
func (v Validacion) Valida() bool {
	return len(v.Errores) == 0
}

func (v Validacion) String() string {
	msgs := make([]string, 0, len(v.Errores))
	for _, e := range v.Errores {
		msgs = append(msgs, e.Mensaje)
	}
	return strings.Join(msgs, "; ")
}

func (v *Validacion) agregar(campo, mensaje string) {
	v.Errores = append(v.Errores, CampoError{Campo: campo, Mensaje: mensaje})
}

// ValidarCita revisa los campos de la solicitud contra el esquema de Cita.
// En modo parcial (actualizaciones) solo se revisan los campos presentes.
func ValidarCita(req CitaRequest, parcial bool) Validacion {
	var v Validacion

	requeridos := []struct {
		campo string
		valor *string
	}{
		{"nombre", req.Nombre},
		{"correo", req.Correo},
		{"fecha", req.Fecha},
		{"hora", req.Hora},
	}
	for _, r := range requeridos {
		if r.valor == nil {
			if !parcial {
				v.agregar(r.campo, fmt.Sprintf("El campo %s es requerido", r.campo))
			}
			continue
		}
		if strings.TrimSpace(*r.valor) == "" {
			v.agregar(r.campo, fmt.Sprintf("El campo %s no puede estar vacío", r.campo))
		}
	}

	if req.Fecha != nil && strings.TrimSpace(*req.Fecha) != "" {
		if _, ok := ParsearFecha(*req.Fecha); !ok {
			v.agregar("fecha", fmt.Sprintf("El campo fecha no es una fecha válida: %q", *req.Fecha))
		}
	}

	return v
}
