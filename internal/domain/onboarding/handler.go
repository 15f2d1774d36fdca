package onboarding

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"nutrisnap/internal/domain/accounts"
	"nutrisnap/internal/domain/nutrition"
	"nutrisnap/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/onboarding", func(or chi.Router) {
		or.Get("/options", optionsHandler())
		or.Post("/steps/{step}/validate", validateStepHandler())
		or.Post("/preview", previewHandler(svc))
		or.Post("/complete", completeHandler(svc))
	})
}

type optionResponse struct {
	Value       string `json:"value"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Detail      string `json:"detail,omitempty"`
}

type optionsResponse struct {
	TotalSteps     int              `json:"total_steps"`
	Units          []string         `json:"units"`
	Sexes          []optionResponse `json:"sexes"`
	ActivityLevels []optionResponse `json:"activity_levels"`
	Goals          []optionResponse `json:"goals"`
}

type stepResponse struct {
	Step  int        `json:"step"`
	Valid bool       `json:"valid"`
	Error *StepError `json:"error,omitempty"`
}

type previewResponse struct {
	Unit           Unit                     `json:"unit"`
	HeightCm       float64                  `json:"height_cm"`
	WeightKg       float64                  `json:"weight_kg"`
	TargetWeightKg float64                  `json:"target_weight_kg"`
	HeightImperial nutrition.HeightImperial `json:"height_imperial"`
	WeightLbs      int                      `json:"weight_lbs"`
	HeightLabel    string                   `json:"height_label"`
	WeightLabel    string                   `json:"weight_label"`
	GoalLabel      string                   `json:"goal_label"`
	Plan           nutrition.Plan           `json:"plan"`
}

type completeResponse struct {
	Persisted bool                 `json:"persisted"`
	Plan      nutrition.Plan       `json:"plan"`
	User      *accounts.UserRecord `json:"user,omitempty"`
}

// optionsHandler godoc
// @Summary Opciones del onboarding
// @Description Lista sexos, niveles de actividad y objetivos con sus textos para UI.
// @Tags onboarding
// @Produce json
// @Success 200 {object} optionsResponse
// @Router /onboarding/options [get]
func optionsHandler() http.HandlerFunc {
	out := optionsResponse{
		TotalSteps: TotalSteps,
		Units:      []string{string(UnitMetric), string(UnitImperial)},
	}
	for _, s := range nutrition.Sexes() {
		out.Sexes = append(out.Sexes, optionResponse{Value: string(s), Title: s.Title()})
	}
	for _, l := range nutrition.ActivityLevels() {
		out.ActivityLevels = append(out.ActivityLevels, optionResponse{
			Value:       string(l),
			Title:       l.Title(),
			Description: nutrition.ActivityDescription(l),
		})
	}
	for _, g := range nutrition.Goals() {
		out.Goals = append(out.Goals, optionResponse{
			Value:       string(g),
			Title:       nutrition.GoalLabel(g),
			Description: nutrition.GoalDescription(g),
			Detail:      nutrition.GoalDetail(g),
		})
	}

	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, out)
	}
}

// validateStepHandler godoc
// @Summary Validar un paso
// @Description Valida los campos del paso indicado (1..5). El paso 5 revalida 2 a 4. Un error trae title y message para mostrar al usuario.
// @Tags onboarding
// @Accept json
// @Produce json
// @Param step path int true "Paso (1..5)"
// @Param payload body Form true "Formulario tal como se tipeó"
// @Success 200 {object} stepResponse
// @Failure 400 {object} stepResponse
// @Failure 404 {string} string "unknown step"
// @Router /onboarding/steps/{step}/validate [post]
func validateStepHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		step, err := strconv.Atoi(chi.URLParam(r, "step"))
		if err != nil {
			http.Error(w, "unknown step", http.StatusNotFound)
			return
		}

		var f Form
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		err = ValidateStep(step, f)
		if errors.Is(err, ErrUnknownStep) {
			http.Error(w, "unknown step", http.StatusNotFound)
			return
		}

		var se *StepError
		if errors.As(err, &se) {
			writeJSON(w, http.StatusBadRequest, stepResponse{Step: step, Error: se})
			return
		}

		writeJSON(w, http.StatusOK, stepResponse{Step: step, Valid: true})
	}
}

// previewHandler godoc
// @Summary Vista previa del plan
// @Description Valida el formulario completo y devuelve BMR, TDEE, calorías diarias y macros, más las medidas normalizadas a métrico.
// @Tags onboarding
// @Accept json
// @Produce json
// @Param payload body Form true "Formulario tal como se tipeó"
// @Success 200 {object} previewResponse
// @Failure 400 {object} StepError
// @Router /onboarding/preview [post]
func previewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f Form
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Preview(r.Context(), f)
		if err != nil {
			writeValidation(w, err)
			return
		}

		b := p.Input.Biometrics
		writeJSON(w, http.StatusOK, previewResponse{
			Unit:           p.Input.Unit,
			HeightCm:       b.HeightCm,
			WeightKg:       b.WeightKg,
			TargetWeightKg: p.Input.TargetWeightKg,
			HeightImperial: nutrition.CmToFeet(b.HeightCm),
			WeightLbs:      int(math.Round(nutrition.KgToLbs(b.WeightKg))),
			HeightLabel:    HeightLabel(f),
			WeightLabel:    WeightLabel(f),
			GoalLabel:      nutrition.GoalLabel(p.Input.Goal),
			Plan:           p.Plan,
		})
	}
}

// completeHandler godoc
// @Summary Completar onboarding
// @Description Calcula el plan y guarda la fila `users` del usuario autenticado con onboarding_completed=true. Sin usuario (invitado, sin header Authorization) devuelve el plan con persisted=false. Un token presente pero inválido o vencido responde 401. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags onboarding
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body Form true "Formulario tal como se tipeó"
// @Success 201 {object} completeResponse "guardado"
// @Success 200 {object} completeResponse "invitado, sin guardar"
// @Failure 400 {object} StepError
// @Failure 401 {string} string "unauthorized"
// @Failure 409 {string} string "onboarding already completed"
// @Failure 502 {string} string "failed to save your data"
// @Router /onboarding/complete [post]
func completeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok && middleware.AuthRejected(r.Context()) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var f Form
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.Complete(r.Context(), claims, ok, f)
		switch {
		case err == nil:
		case IsValidation(err):
			writeValidation(w, err)
			return
		case errors.Is(err, accounts.ErrAlreadyExists):
			http.Error(w, "onboarding already completed", http.StatusConflict)
			return
		default:
			http.Error(w, "failed to save your data", http.StatusBadGateway)
			return
		}

		if !res.Persisted {
			writeJSON(w, http.StatusOK, completeResponse{Plan: res.Plan})
			return
		}

		u := accounts.EncodeUser(res.User)
		writeJSON(w, http.StatusCreated, completeResponse{Persisted: true, Plan: res.Plan, User: &u})
	}
}

func writeValidation(w http.ResponseWriter, err error) {
	var se *StepError
	if errors.As(err, &se) {
		writeJSON(w, http.StatusBadRequest, se)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
