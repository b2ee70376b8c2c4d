package domain

// Profile é o perfil do LinkedIn usado para personalizar a mensagem.
// Não é persistido: cada geração busca um perfil novo.
type Profile struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Summary    string `json:"summary,omitempty"`
	Occupation string `json:"occupation,omitempty"`
	Company    string `json:"company,omitempty"`
	Location   string `json:"location,omitempty"`
	ProfileURL string `json:"profileUrl"`
}

type PersonalizedMessageRequest struct {
	URL string `json:"url"`
}

type PersonalizedMessageResponse struct {
	Message string `json:"message"`
}
