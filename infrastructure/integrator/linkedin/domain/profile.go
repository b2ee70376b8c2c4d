package linkedindomain

// ProfileData é o payload de get-profile-data-by-url, apenas com os campos usados
type ProfileData struct {
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Summary   string     `json:"summary"`
	Headline  string     `json:"headline"`
	Position  []Position `json:"position"`
	Geo       *Geo       `json:"geo"`
}

type Position struct {
	CompanyName string `json:"companyName"`
	Title       string `json:"title"`
}

type Geo struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Full    string `json:"full"`
}

// CurrentPosition retorna a primeira posição, que o RapidAPI ordena como a atual
func (p *ProfileData) CurrentPosition() *Position {
	if len(p.Position) == 0 {
		return nil
	}
	return &p.Position[0]
}

// ErrorResponse representa o corpo de erro do RapidAPI
type ErrorResponse struct {
	Message string `json:"message"`
}
