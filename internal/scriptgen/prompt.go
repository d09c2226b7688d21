package scriptgen

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

const slidePrompt = `Você é um professor universitário de %[1]s.

Gere um roteiro falado para o Slide %[2]d de uma aula que já está em andamento.
O roteiro deve fluir naturalmente a partir do roteiro anterior.

Conteúdo do Slide Atual (Slide %[2]d):
"%[3]s"

**O tempo de fala para ESTE slide específico deve ser de aproximadamente %[4]s.**

Tipo do slide: %[5]s.

Roteiro do Slide Anterior (para dar continuidade):
"%[6]s"

Com base nisso, gere um roteiro falado didático e técnico.
Seja conciso e objetivo para respeitar o tempo alocado.
Utilize exemplos reais e legislação %[7]s quando aplicável e pertinente ao tópico.`

var positionNames = map[models.Position]string{
	models.PositionInitial:      "inicial",
	models.PositionIntermediate: "intermediário",
	models.PositionFinal:        "final",
}

// DurationPhrase renders seconds as spoken in the prompt.
func DurationPhrase(seconds int) string {
	if seconds >= 60 {
		return fmt.Sprintf("%d minuto(s) e %d segundos", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%d segundos", seconds)
}

func (g *implGenerator) buildPrompt(req models.SlideRequest) string {
	return fmt.Sprintf(slidePrompt,
		g.subject,
		req.SlideNum,
		strings.TrimSpace(req.Content),
		DurationPhrase(req.Seconds),
		positionNames[req.Position],
		strings.TrimSpace(req.PreviousScript),
		g.jurisdiction,
	)
}
