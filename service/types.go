package service

// Profile is the editable personal section of a user account.
type Profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Avatar    string `json:"avatar"`
}

// User is an account as the API exposes it to authenticated callers.
type User struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	Profile        Profile `json:"profile"`
	DepartmentName string  `json:"department_name"`
	PositionName   string  `json:"position_name"`
}

// CV is a curriculum vitae owned by a user.
type CV struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Education   string `json:"education"`
	Description string `json:"description"`
	User        *struct {
		ID string `json:"id"`
	} `json:"user"`
}

// Skill is a reference-table entry users attach to their profiles and CVs.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Language is a reference-table entry with its ISO code and native spelling.
type Language struct {
	ID         string `json:"id"`
	ISO2       string `json:"iso2"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

// Project is a client engagement CVs reference.
type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	InternalName string `json:"internal_name"`
	Domain       string `json:"domain"`
	Description  string `json:"description"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

// Department is an organizational unit users belong to.
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Position is a job title users hold.
type Position struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
