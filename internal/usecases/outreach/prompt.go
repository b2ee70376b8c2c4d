package outreach

import (
	"fmt"
	"strings"

	"github.com/vfg2006/outflo-api/internal/domain"
)

const promptExample = `{
"message": "Hey John, I see you are working as a Software Engineer at TechCorp. Outflo can help automate your outreach to increase meetings & sales. Let's connect!"
}`

// BuildPrompt monta o prompt de geração a partir do perfil. Mesma entrada, mesmo texto.
func BuildPrompt(profile *domain.Profile) string {
	var b strings.Builder

	b.WriteString("Generate a personalized message for LinkedIn outreach based on the following information:\n")
	fmt.Fprintf(&b, "- First Name: %s\n", profile.FirstName)
	fmt.Fprintf(&b, "- Last Name: %s\n", profile.LastName)
	if summary := strings.TrimSpace(profile.Summary); summary != "" {
		fmt.Fprintf(&b, "- Summary: %s\n", summary)
	}
	if occupation := strings.TrimSpace(profile.Occupation); occupation != "" {
		fmt.Fprintf(&b, "- Role: %s\n", occupation)
	}
	fmt.Fprintf(&b, "- Company: %s\n", profile.Company)
	fmt.Fprintf(&b, "- Location: %s\n", profile.Location)

	b.WriteString("\nThe message should be short, friendly, professional, and relevant to the recipient's background and current role. ")
	b.WriteString("It should include a call to action for connecting or networking. ")
	b.WriteString("It must also mention how Outflo helps automate outreach to increase meetings and sales.\n")

	b.WriteString("\nFor example:\n\n")
	b.WriteString(promptExample)
	b.WriteString("\n\n")

	b.WriteString("Do not add anything else other than the message, just output the message directly.\n")

	return b.String()
}
