package domain

type Role string

const (
	RoleAnalyst  Role = "Analyst"
	RoleEngineer Role = "Engineer"
	RoleManager  Role = "Manager"
	RoleDirector Role = "Director"
)

var Roles = []Role{RoleAnalyst, RoleEngineer, RoleManager, RoleDirector}

type Sector string

const (
	SectorProduct    Sector = "Product"
	SectorData       Sector = "Data"
	SectorMarketing  Sector = "Marketing"
	SectorOperations Sector = "Operations"
)

var Sectors = []Sector{SectorProduct, SectorData, SectorMarketing, SectorOperations}

type Gender string

const (
	GenderMale      Gender = "Male"
	GenderFemale    Gender = "Female"
	GenderNonBinary Gender = "Non-binary"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderNonBinary}

// SalaryRecord is one simulated employee. Its country is drawn
// independently of the campaign dataset.
type SalaryRecord struct {
	Role      Role    `json:"role"`
	Sector    Sector  `json:"sector"`
	Country   Country `json:"country"`
	Gender    Gender  `json:"gender"`
	Age       int     `json:"age"`
	SalaryUSD float64 `json:"salary_usd"`
}
