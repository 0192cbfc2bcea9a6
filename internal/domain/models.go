package domain

import (
	"time"
)

// Core Enums and Types

// PredictionStatus represents the review lifecycle state of a prediction.
type PredictionStatus string

const (
	StatusPending  PredictionStatus = "Pending"
	StatusVerified PredictionStatus = "Verified"
	StatusRejected PredictionStatus = "Rejected"
	// StatusModified exists in the state vocabulary but no operation
	// produces it. Kept for wire compatibility with stored records.
	StatusModified PredictionStatus = "Modified"
)

// Severity represents the clinical severity grade of a catalog disease.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// UserRole represents an application role.
type UserRole string

const (
	RolePatient UserRole = "PATIENT"
	RoleDoctor  UserRole = "DOCTOR"
	RoleAdmin   UserRole = "ADMIN"
)

// RiskLevel represents the surveillance risk grade assigned to a city.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// Catalog Models

// Medication is a single entry in a clinical protocol.
type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
}

// ClinicalProtocol holds the recommended treatment plan for a disease.
type ClinicalProtocol struct {
	Steps       []string     `json:"steps"`
	Medications []Medication `json:"medications"`
}

// Disease is one immutable entry in the static disease catalog.
type Disease struct {
	Name      string            `json:"name"`
	Symptoms  []string          `json:"symptoms"`
	Severity  Severity          `json:"severity"`
	Specialty string            `json:"specialty"`
	Protocol  *ClinicalProtocol `json:"protocol,omitempty"`
}

// Prediction Models

// Prediction is the stored outcome of one symptom-to-disease scoring
// run, including its review lifecycle. diseaseName, confidence,
// severity, specialty and symptoms are fixed at creation and never
// recomputed; only status, doctorNote, verifiedBy and the optional
// clinicalRationale change afterwards.
type Prediction struct {
	ID                string           `json:"id"`
	PatientID         string           `json:"patient_id"`
	PatientName       string           `json:"patient_name"`
	DiseaseName       string           `json:"disease_name"`
	Confidence        int              `json:"confidence"`
	Symptoms          []string         `json:"symptoms"`
	Location          string           `json:"location"`
	Timestamp         time.Time        `json:"timestamp"`
	Status            PredictionStatus `json:"status"`
	DoctorNote        string           `json:"doctor_note,omitempty"`
	VerifiedBy        string           `json:"verified_by,omitempty"`
	Severity          Severity         `json:"severity"`
	Specialty         string           `json:"specialty"`
	ClinicalRationale string           `json:"clinical_rationale,omitempty"`
}

// User Models

// User is an authenticated application user. Only ID and Name are
// consumed by the review workflow; the remaining fields back the
// profile views.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`

	// Doctor specific
	Specialty           string `json:"specialty,omitempty"`
	LicenseNumber       string `json:"license_number,omitempty"`
	HospitalAffiliation string `json:"hospital_affiliation,omitempty"`
	ConsultationFee     int    `json:"consultation_fee,omitempty"`
	YearsOfExperience   int    `json:"years_of_experience,omitempty"`
	Bio                 string `json:"bio,omitempty"`

	// Admin specific
	AccessLevel   string `json:"access_level,omitempty"`
	Department    string `json:"department,omitempty"`
	ClearanceCode string `json:"clearance_code,omitempty"`
	PersonnelCode string `json:"personnel_code,omitempty"`

	// Patient / common
	Phone             string `json:"phone,omitempty"`
	DOB               string `json:"dob,omitempty"`
	Gender            string `json:"gender,omitempty"`
	BloodGroup        string `json:"blood_group,omitempty"`
	Address           string `json:"address,omitempty"`
	PreferredHospital string `json:"preferred_hospital,omitempty"`
	Allergies         string `json:"allergies,omitempty"`
	ChronicConditions string `json:"chronic_conditions,omitempty"`
	EmergencyContact  string `json:"emergency_contact,omitempty"`
	EmergencyPhone    string `json:"emergency_phone,omitempty"`
	InsuranceProvider string `json:"insurance_provider,omitempty"`
	InsurancePolicy   string `json:"insurance_policy,omitempty"`
}

// Registry Models

// Doctor is one entry in the static practitioner registry.
type Doctor struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	Experience int     `json:"experience"`
	Rating     float64 `json:"rating"`
	Reviews    int     `json:"reviews"`
	Hospital   string  `json:"hospital"`
	Location   string  `json:"location"`
	Fee        int     `json:"fee"`
}

// MedicalTest is one entry in the static diagnostics registry.
type MedicalTest struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	Price           int    `json:"price"`
	Duration        string `json:"duration"`
	Hospital        string `json:"hospital"`
	Description     string `json:"description"`
	ClinicalUtility string `json:"clinical_utility"`
}

// Vaccine is one entry in the static immunization registry.
type Vaccine struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Category       string `json:"category"`
	Price          int    `json:"price"`
	AgeEligibility string `json:"age_eligibility"`
	Hospital       string `json:"hospital"`
}

// Surveillance Models

// CityData is one entry in the static surveillance dashboard dataset.
type CityData struct {
	Name            string    `json:"name"`
	Lat             float64   `json:"lat"`
	Lng             float64   `json:"lng"`
	Predictions     int       `json:"predictions"`
	Risk            RiskLevel `json:"risk"`
	HazardType      string    `json:"hazard_type"`
	PopAtRisk       string    `json:"pop_at_risk"`
	HealthcareLoad  int       `json:"healthcare_load"`
	EconomicImpact  string    `json:"economic_impact"`
	ProjectedGrowth string    `json:"projected_growth"`
}

// DeploymentReport is the synthesized resource-deployment briefing for
// a surveillance city.
type DeploymentReport struct {
	City               string               `json:"city"`
	Risk               RiskLevel            `json:"risk"`
	SituationSummary   string               `json:"situation_summary"`
	Manpower           []ManpowerAllocation `json:"manpower"`
	FinancialBudget    string               `json:"financial_budget"`
	PrimaryExpense     string               `json:"primary_expense"`
	TacticalSteps      []string             `json:"tactical_steps"`
	SuccessProbability int                  `json:"success_probability"`
	GeneratedAt        time.Time            `json:"generated_at"`
}

// ManpowerAllocation is one line item in a deployment briefing.
type ManpowerAllocation struct {
	Type  string `json:"type"`
	Count string `json:"count"`
}

// OrganPledge records a patient's organ-donation pledge.
type OrganPledge struct {
	PatientID string    `json:"patient_id"`
	Organs    []string  `json:"organs"`
	PledgedAt time.Time `json:"pledged_at"`
}
