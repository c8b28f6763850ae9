package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/ICHI0608/jiji-matching/internal/domain"
	"github.com/ICHI0608/jiji-matching/internal/matching"
)

// MatchRequest is the /match payload. All profile fields are optional;
// missing values fall back to lenient defaults inside the engine.
type MatchRequest struct {
	Profile       ProfilePayload `json:"profile"`
	ConcernTexts  []string       `json:"concern_texts" validate:"max=20,dive,max=1000"`
	PreferredArea string         `json:"preferred_area" validate:"max=100"`
	MaxResults    int            `json:"max_results" validate:"gte=0,lte=20"`
}

type ProfilePayload struct {
	Name               string `json:"name" validate:"max=100"`
	DivingExperience   string `json:"diving_experience" validate:"omitempty,oneof=none beginner advanced"`
	LicenseType        string `json:"license_type" validate:"omitempty,oneof=none OWD AOW"`
	ParticipationStyle string `json:"participation_style" validate:"omitempty,oneof=solo couple group"`
	PreferredArea      string `json:"preferred_area" validate:"max=100"`
}

func (p ProfilePayload) toDomain() domain.UserProfile {
	return domain.UserProfile{
		Name:               p.Name,
		DivingExperience:   domain.DivingExperience(p.DivingExperience),
		LicenseType:        domain.LicenseType(p.LicenseType),
		ParticipationStyle: domain.ParticipationStyle(p.ParticipationStyle),
		PreferredArea:      p.PreferredArea,
	}
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	result := s.engine.FindOptimalShops(r.Context(), req.Profile.toDomain(), req.ConcernTexts, matching.Options{
		PreferredArea: req.PreferredArea,
		MaxResults:    maxResults,
	})

	// The envelope is always 200: failures are part of the contract and
	// carry their own success flag plus fallback message.
	writeJSON(w, http.StatusOK, result)
}

type ShopsListResponse struct {
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
	Total  int                 `json:"total"`
	Items  []domain.ShopRecord `json:"items"`
}

func (s *Server) handleShopsList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, offset := parseLimitOffset(q.Get("limit"), q.Get("offset"))

	shops, total, err := s.store.ListShops(q.Get("area"), limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Msg("list shops failed")
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	if shops == nil {
		shops = []domain.ShopRecord{}
	}

	writeJSON(w, http.StatusOK, ShopsListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Items:  shops,
	})
}

func (s *Server) handleShopGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "shopID")

	shop, found, err := s.store.GetShop(id)
	if err != nil {
		s.logger.Error().Err(err).Str("shop_id", id).Msg("get shop failed")
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, shop)
}

// CreateShopRequest mirrors ShopRecord minus the ID, which is generated
// when the caller omits it.
type CreateShopRequest struct {
	ShopID   string `json:"shop_id" validate:"max=64"`
	ShopName string `json:"shop_name" validate:"required,max=200"`
	Area     string `json:"area" validate:"required,max=100"`

	BeginnerFriendly bool   `json:"beginner_friendly"`
	TrialDiveOptions string `json:"trial_dive_options"`
	JijiGrade        string `json:"jiji_grade" validate:"omitempty,oneof=S A B C"`

	SafetyEquipment   bool   `json:"safety_equipment"`
	InsuranceCoverage bool   `json:"insurance_coverage"`
	ExperienceYears   int    `json:"experience_years" validate:"gte=0"`
	IncidentRecord    string `json:"incident_record"`

	MaxGroupSize          int  `json:"max_group_size" validate:"gte=0"`
	PrivateGuideAvailable bool `json:"private_guide_available"`

	FunDivePrice2Tanks      float64 `json:"fun_dive_price_2tanks" validate:"gte=0"`
	TrialDivePriceBeach     float64 `json:"trial_dive_price_beach" validate:"gte=0"`
	EquipmentRentalIncluded bool    `json:"equipment_rental_included"`
	PhotoService            bool    `json:"photo_service"`
	AdditionalFees          string  `json:"additional_fees"`

	SoloWelcome    bool    `json:"solo_welcome"`
	CustomerRating float64 `json:"customer_rating" validate:"gte=0,lte=5"`

	ReviewCount   int  `json:"review_count" validate:"gte=0"`
	PickupService bool `json:"pickup_service"`
	VideoService  bool `json:"video_service"`
}

func (s *Server) handleShopCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	if req.ShopID == "" {
		req.ShopID = uuid.NewString()
	}

	shop := domain.ShopRecord{
		ShopID:                  req.ShopID,
		ShopName:                req.ShopName,
		Area:                    req.Area,
		BeginnerFriendly:        req.BeginnerFriendly,
		TrialDiveOptions:        req.TrialDiveOptions,
		JijiGrade:               req.JijiGrade,
		SafetyEquipment:         req.SafetyEquipment,
		InsuranceCoverage:       req.InsuranceCoverage,
		ExperienceYears:         req.ExperienceYears,
		IncidentRecord:          req.IncidentRecord,
		MaxGroupSize:            req.MaxGroupSize,
		PrivateGuideAvailable:   req.PrivateGuideAvailable,
		FunDivePrice2Tanks:      req.FunDivePrice2Tanks,
		TrialDivePriceBeach:     req.TrialDivePriceBeach,
		EquipmentRentalIncluded: req.EquipmentRentalIncluded,
		PhotoService:            req.PhotoService,
		AdditionalFees:          req.AdditionalFees,
		SoloWelcome:             req.SoloWelcome,
		CustomerRating:          req.CustomerRating,
		ReviewCount:             req.ReviewCount,
		PickupService:           req.PickupService,
		VideoService:            req.VideoService,
	}

	if err := s.store.CreateShop(shop); err != nil {
		s.logger.Error().Err(err).Str("shop_id", shop.ShopID).Msg("create shop failed")
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	writeJSON(w, http.StatusCreated, shop)
}

func (s *Server) handleShopDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "shopID")

	deleted, err := s.store.DeleteShop(id)
	if err != nil {
		s.logger.Error().Err(err).Str("shop_id", id).Msg("delete shop failed")
		writeError(w, http.StatusInternalServerError, "storage_error")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func parseLimitOffset(limitStr, offsetStr string) (int, int) {
	limit := 20
	if v, err := strconv.Atoi(limitStr); err == nil && v > 0 {
		limit = v
	}
	if limit > 200 {
		limit = 200
	}

	offset := 0
	if v, err := strconv.Atoi(offsetStr); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
