package pets

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"petstore/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	mediaJSON = "application/json"
	mediaForm = "application/x-www-form-urlencoded"

	maxBodyBytes = 1 << 20
)

var (
	errMalformedJSON = errors.New("invalid json: body must be a JSON object")
	errBodyTooLarge  = errors.New("request body too large")
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))

		pr.Put("/{petID}/purchase", purchasePetHandler(svc))
	})
}

// petResponse documenta la forma JSON de una mascota (ver Pet.Serialize).
type petResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Available bool   `json:"available"`
	Gender    Gender `json:"gender" enums:"MALE,FEMALE,UNKNOWN"`
}

// petRequest documenta el cuerpo JSON de create/update (solo para swagger;
// el decode real es a map para poder validar con schema).
type petRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Available bool   `json:"available"`
	Gender    Gender `json:"gender" enums:"MALE,FEMALE,UNKNOWN"`
}

// ErrorResponse es el cuerpo de todas las respuestas de error.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Devuelve todas las mascotas o las filtradas por un único criterio. Si llegan varios filtros se aplica solo el primero en el orden category, name, available, gender.
// @Tags pets
// @Produce json
// @Param category query string false "Categoría exacta"
// @Param name query string false "Nombre exacto"
// @Param available query string false "yes/y/true/t/1 = disponible; cualquier otro valor = no disponible"
// @Param gender query string false "MALE, FEMALE o UNKNOWN"
// @Success 200 {array} petResponse
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.From(r.Context())

		f := FilterFromQuery(r.URL.Query())
		if f.Field != FilterNone {
			log.Info("filtering pets", zap.String("field", string(f.Field)), zap.String("value", f.Value))
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			writeDomainError(w, r, "", err)
			return
		}

		out := make([]map[string]any, 0, len(items))
		for _, p := range items {
			out = append(out, p.Serialize())
		}

		log.Info("returning pets", zap.Int("count", len(out)))
		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} ErrorResponse
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		p, err := svc.Get(r.Context(), petID)
		if err != nil {
			writeDomainError(w, r, petID, err)
			return
		}

		logger.From(r.Context()).Info("returning pet", logger.PetID(p.ID), zap.String("name", p.Name))
		writeJSON(w, http.StatusOK, p.Serialize())
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description Acepta JSON o un form (name, category, available, gender). En el form, available usa los mismos tokens que el filtro de listado.
// @Tags pets
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param payload body petRequest true "Datos de la mascota"
// @Success 201 {object} petResponse
// @Header 201 {string} Location "/pets/{id}"
// @Failure 400 {object} ErrorResponse "Content-Type ausente o no soportado / body inválido"
// @Failure 413 {object} ErrorResponse "body mayor a 1MB"
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.From(r.Context())

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			writeError(w, http.StatusBadRequest, "No Content-Type set")
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		var data map[string]any
		switch contentType {
		case mediaForm:
			if err := r.ParseForm(); err != nil {
				writeBodyError(w, err)
				return
			}
			data = formData(r)
		case mediaJSON:
			var err error
			data, err = decodeObject(r)
			if err != nil {
				writeBodyError(w, err)
				return
			}
		default:
			msg := fmt.Sprintf("Unsupported Content-Type: %s", contentType)
			log.Info(msg)
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		p, err := svc.Create(r.Context(), data)
		if err != nil {
			writeDomainError(w, r, "", err)
			return
		}

		log.Info("pet created", logger.PetID(p.ID))
		w.Header().Set("Location", "/pets/"+p.ID)
		writeJSON(w, http.StatusCreated, p.Serialize())
	}
}

// updatePetHandler godoc
// @Summary Reemplazar mascota
// @Description Reemplaza name, category, available y gender. El id del path gana sobre cualquier id del body.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body petRequest true "Datos completos de la mascota"
// @Success 200 {object} petResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse "body mayor a 1MB"
// @Failure 415 {object} ErrorResponse
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		if !checkContentType(w, r, mediaJSON) {
			return
		}

		// la mascota tiene que existir antes de mirar el body
		if _, err := svc.Get(r.Context(), petID); err != nil {
			writeDomainError(w, r, petID, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		data, err := decodeObject(r)
		if err != nil {
			writeBodyError(w, err)
			return
		}

		p, err := svc.Update(r.Context(), petID, data)
		if err != nil {
			writeDomainError(w, r, petID, err)
			return
		}

		logger.From(r.Context()).Info("pet updated", logger.PetID(p.ID))
		writeJSON(w, http.StatusOK, p.Serialize())
	}
}

// deletePetHandler godoc
// @Summary Eliminar mascota
// @Description Idempotente: responde 204 exista o no la mascota.
// @Tags pets
// @Param petID path string true "ID de la mascota"
// @Success 204
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		if err := svc.Delete(r.Context(), petID); err != nil {
			writeDomainError(w, r, petID, err)
			return
		}

		logger.From(r.Context()).Info("pet delete complete", logger.PetID(petID))
		w.WriteHeader(http.StatusNoContent)
	}
}

// purchasePetHandler godoc
// @Summary Comprar mascota
// @Description Marca la mascota como no disponible. Solo funciona sobre mascotas disponibles.
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "is not available"
// @Router /pets/{petID}/purchase [put]
func purchasePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		p, err := svc.Purchase(r.Context(), petID)
		if err != nil {
			writeDomainError(w, r, petID, err)
			return
		}

		logger.From(r.Context()).Info("pet purchased", logger.PetID(p.ID))
		writeJSON(w, http.StatusOK, p.Serialize())
	}
}

// checkContentType exige que Content-Type sea exactamente mediaType.
// Ausente => 400, distinto => 415. Escribe la respuesta y devuelve false si falla.
func checkContentType(w http.ResponseWriter, r *http.Request, mediaType string) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		writeError(w, http.StatusBadRequest, "No Content-Type set")
		return false
	}
	if contentType == mediaType {
		return true
	}

	logger.From(r.Context()).Error("invalid Content-Type", zap.String("content_type", contentType))
	writeError(w, http.StatusUnsupportedMediaType, fmt.Sprintf("Content-Type must be %s", mediaType))
	return false
}

// formData arma el payload desde un form. Los campos ausentes no se agregan,
// así la validación los reporta como faltantes.
func formData(r *http.Request) map[string]any {
	data := map[string]any{}
	for _, f := range []string{"name", "category", "gender"} {
		if _, ok := r.PostForm[f]; ok {
			data[f] = r.PostForm.Get(f)
		}
	}
	if _, ok := r.PostForm["available"]; ok {
		data["available"] = ParseAvailable(r.PostForm.Get("available"))
	}
	return data
}

// decodeObject exige exactamente un objeto JSON en el body; cualquier dato
// después del objeto lo vuelve inválido.
func decodeObject(r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(r.Body)

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, bodyErr(err)
	}
	if data == nil {
		return nil, errMalformedJSON
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, bodyErr(err)
	}
	return data, nil
}

func bodyErr(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errBodyTooLarge
	}
	return errMalformedJSON
}

// writeBodyError responde 413 si se pasó de maxBodyBytes y 400 en cualquier otro caso.
func writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.Is(err, errBodyTooLarge) || errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, errBodyTooLarge.Error())
		return
	}
	if errors.Is(err, errMalformedJSON) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusBadRequest, "invalid form data")
}

func writeDomainError(w http.ResponseWriter, r *http.Request, petID string, err error) {
	var ve *ValidationError
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("Pet with id '%s' was not found.", petID))
	case errors.Is(err, ErrNotAvailable):
		writeError(w, http.StatusConflict, fmt.Sprintf("Pet with id '%s' is not available.", petID))
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Error())
	default:
		logger.From(r.Context()).Error("pet store failure", logger.PetID(petID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: msg,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
