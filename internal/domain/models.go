package domain

// DivingExperience classifies how much diving a user has done.
type DivingExperience string

const (
	ExperienceNone     DivingExperience = "none"
	ExperienceBeginner DivingExperience = "beginner"
	ExperienceAdvanced DivingExperience = "advanced"
)

// IsNovice reports whether the user has little or no diving experience.
func (e DivingExperience) IsNovice() bool {
	return e == ExperienceNone || e == ExperienceBeginner
}

// LicenseType is the user's certification level.
type LicenseType string

const (
	LicenseNone LicenseType = "none"
	LicenseOWD  LicenseType = "OWD"
	LicenseAOW  LicenseType = "AOW"
)

// ParticipationStyle is how the user plans to join a tour.
type ParticipationStyle string

const (
	StyleSolo   ParticipationStyle = "solo"
	StyleCouple ParticipationStyle = "couple"
	StyleGroup  ParticipationStyle = "group"
)

// ConcernCategory identifies one class of user worry.
type ConcernCategory string

const (
	ConcernSafety        ConcernCategory = "safety"
	ConcernSkill         ConcernCategory = "skill"
	ConcernSolo          ConcernCategory = "solo"
	ConcernCost          ConcernCategory = "cost"
	ConcernPhysical      ConcernCategory = "physical"
	ConcernCommunication ConcernCategory = "communication"
)

// UserProfile is supplied per request by the chat layer and never persisted.
type UserProfile struct {
	Name               string             `json:"name,omitempty"`
	DivingExperience   DivingExperience   `json:"diving_experience"`
	LicenseType        LicenseType        `json:"license_type"`
	ParticipationStyle ParticipationStyle `json:"participation_style"`
	PreferredArea      string             `json:"preferred_area,omitempty"`
}

// DisplayName falls back to a generic label when the user gave no name.
func (p UserProfile) DisplayName() string {
	if p.Name == "" {
		return "ゲスト"
	}
	return p.Name
}

// ShopRecord is one catalog entry. The catalog provider owns normalization;
// the matching core treats these fields as already clean.
type ShopRecord struct {
	ShopID   string `json:"shop_id"`
	ShopName string `json:"shop_name"`
	Area     string `json:"area"`

	BeginnerFriendly bool   `json:"beginner_friendly"`
	TrialDiveOptions string `json:"trial_dive_options"`
	JijiGrade        string `json:"jiji_grade"`

	SafetyEquipment   bool   `json:"safety_equipment"`
	InsuranceCoverage bool   `json:"insurance_coverage"`
	ExperienceYears   int    `json:"experience_years"`
	IncidentRecord    string `json:"incident_record"`

	MaxGroupSize          int  `json:"max_group_size"`
	PrivateGuideAvailable bool `json:"private_guide_available"`

	FunDivePrice2Tanks      float64 `json:"fun_dive_price_2tanks"`
	TrialDivePriceBeach     float64 `json:"trial_dive_price_beach"`
	EquipmentRentalIncluded bool    `json:"equipment_rental_included"`
	PhotoService            bool    `json:"photo_service"`
	AdditionalFees          string  `json:"additional_fees"`

	SoloWelcome    bool    `json:"solo_welcome"`
	CustomerRating float64 `json:"customer_rating"`

	ReviewCount   int  `json:"review_count"`
	PickupService bool `json:"pickup_service"`
	VideoService  bool `json:"video_service"`
}

// HasIncidents reports whether the shop has anything on its incident record.
// An empty record or an explicit "clean" both count as incident-free.
func (s ShopRecord) HasIncidents() bool {
	return s.IncidentRecord != "" && s.IncidentRecord != "clean"
}
