package entity

// RegulatoryProfile is the registered identity of the generator business.
type RegulatoryProfile struct {
	LegalName                string  `json:"legal_name" yaml:"legalName"`
	TaxID                    string  `json:"tax_id" yaml:"taxId"`
	LegalRepresentative      string  `json:"legal_representative" yaml:"legalRepresentative"`
	Address                  string  `json:"address" yaml:"address"`
	Municipality             string  `json:"municipality" yaml:"municipality"`
	Activity                 string  `json:"activity" yaml:"activity"`
	CIIU                     string  `json:"ciiu" yaml:"ciiu"`
	RegistrationDate         string  `json:"registration_date" yaml:"registrationDate"`
	AdministrativeAct        string  `json:"administrative_act" yaml:"administrativeAct"`
	OperationsContact        string  `json:"operations_contact" yaml:"operationsContact"`
	ContactPhone             string  `json:"contact_phone" yaml:"contactPhone"`
	ContactEmail             string  `json:"contact_email" yaml:"contactEmail"`
	PlatformManager          string  `json:"platform_manager" yaml:"platformManager"`
	PlatformManagerRole      string  `json:"platform_manager_role" yaml:"platformManagerRole"`
	TrapType                 string  `json:"trap_type" yaml:"trapType"`
	TrapCapacityLiters       float64 `json:"trap_capacity_liters" yaml:"trapCapacityLiters"`
	TrapLocation             string  `json:"trap_location" yaml:"trapLocation"`
	MaintenanceFrequencyDays int     `json:"maintenance_frequency_days" yaml:"maintenanceFrequencyDays"`
	LastMaintenance          string  `json:"last_maintenance" yaml:"lastMaintenance"`
}

// RegistrationItemID is the checklist entry that tracks environmental registration.
const RegistrationItemID = "1"

// ComplianceItem is one entry of the regulatory checklist.
type ComplianceItem struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	IsComplete  bool   `json:"is_complete" yaml:"isComplete"`
	RequiredFor string `json:"required_for" yaml:"requiredFor"`
}

// WastewaterStatus is the verdict of a laboratory analysis.
type WastewaterStatus string

const (
	WastewaterCompliant    WastewaterStatus = "Compliant"
	WastewaterNonCompliant WastewaterStatus = "NonCompliant"
)

// WastewaterReport is a laboratory analysis of the discharge.
type WastewaterReport struct {
	ID                 string           `json:"id" yaml:"id"`
	Date               string           `json:"date" yaml:"date"`
	Laboratory         string           `json:"laboratory" yaml:"laboratory"`
	PH                 float64          `json:"ph" yaml:"ph"`
	FatsOilsMgL        float64          `json:"fats_oils_mg_l" yaml:"fatsOilsMgL"`
	SuspendedSolidsMgL float64          `json:"suspended_solids_mg_l" yaml:"suspendedSolidsMgL"`
	CODMgL             float64          `json:"cod_mg_l" yaml:"codMgL"`
	Status             WastewaterStatus `json:"status" yaml:"status"`
	Recommendations    []string         `json:"recommendations" yaml:"recommendations"`
}

// DirectoryEntry is an authorized waste manager listed in the directory.
type DirectoryEntry struct {
	ID      int     `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Type    string  `json:"type" yaml:"type"`
	Rating  float64 `json:"rating" yaml:"rating"`
	Reviews int     `json:"reviews" yaml:"reviews"`
	Area    string  `json:"area" yaml:"area"`
}

// MaintenanceStatus is the grease trap schedule relative to a reference day.
type MaintenanceStatus struct {
	LastMaintenance string `json:"last_maintenance"`
	NextMaintenance string `json:"next_maintenance"`
	DaysRemaining   int    `json:"days_remaining"`
	IsOverdue       bool   `json:"is_overdue"`
	IsDueSoon       bool   `json:"is_due_soon"`
}

// ComplianceStatus aggregates the regulatory standing of the business.
type ComplianceStatus struct {
	IsRegistered bool              `json:"is_registered"`
	Maintenance  MaintenanceStatus `json:"maintenance"`
	Completed    int               `json:"completed"`
	Total        int               `json:"total"`
}

// DashboardSummary is the annual impact overview.
type DashboardSummary struct {
	TotalKg         float64          `json:"total_kg"`
	CO2AvoidedKg    float64          `json:"co2_avoided_kg"`
	VerifiedMonths  int              `json:"verified_months"`
	UploadedMonths  int              `json:"uploaded_months"`
	PendingMonths   int              `json:"pending_months"`
	ComplianceScore int              `json:"compliance_score"` // Percentage of completed checklist items.
	Reports         []*MonthlyReport `json:"reports"`
	Status          ComplianceStatus `json:"status"`
}

// TrapInfrastructure is the pretreatment system section of the audit report.
type TrapInfrastructure struct {
	TrapType           string  `json:"trap_type"`
	TrapCapacityLiters float64 `json:"trap_capacity_liters"`
	LastMaintenance    string  `json:"last_maintenance"`
	NextMaintenance    string  `json:"next_maintenance"`
}

// AuditReport is the printable sustainability and audit diagnosis of the establishment.
type AuditReport struct {
	IssuedOn         string             `json:"issued_on"`
	LegalName        string             `json:"legal_name"`
	TaxID            string             `json:"tax_id"`
	FullyCompliant   bool               `json:"fully_compliant"`
	ComplianceMatrix []*ComplianceItem  `json:"compliance_matrix"`
	Infrastructure   TrapInfrastructure `json:"infrastructure"`
	TotalKg          float64            `json:"total_kg"`
	CO2AvoidedTonnes float64            `json:"co2_avoided_tonnes"`
	Recommendations  []string           `json:"recommendations"`
}
