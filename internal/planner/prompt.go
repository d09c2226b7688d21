package planner

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/slide-narrator/internal/models"
)

const planPrompt = `Você é um especialista em design instrucional e roteirista de apresentações de %[1]s.
Sua tarefa é planejar a distribuição de tempo para uma apresentação.

A apresentação tem um tempo total de %[2]d minutos (%[3]d segundos).

Aqui está o conteúdo dos slides que serão apresentados:
---
%[4]s
---

Analise a importância e densidade de cada slide. Distribua o tempo total (%[3]d segundos) entre eles.
Slides densos ou cruciais devem receber mais tempo; slides de transição ou simples, menos tempo.

Sua resposta DEVE ser um objeto JSON válido. O objeto deve ter uma chave "plano", que contém uma lista.
Cada item na lista representa um slide e deve ter:
- "slide_num": (int) O número do slide (deve corresponder aos números fornecidos acima).
- "tempo_atribuido_segundos": (int) O tempo em SEGUNDOS alocado para este slide.

A soma de todos os "tempo_atribuido_segundos" deve ser igual a %[3]d.`

func buildPrompt(subject string, doc models.SourceDocument, totalMinutes int) string {
	lines := make([]string, 0, doc.Len())
	for i, text := range doc.Pages {
		lines = append(lines, fmt.Sprintf("Slide %d: %s", doc.SlideNum(i), strings.TrimSpace(text)))
	}
	return fmt.Sprintf(planPrompt, subject, totalMinutes, totalMinutes*60, strings.Join(lines, "\n"))
}
