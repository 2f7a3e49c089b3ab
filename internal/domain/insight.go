package domain

// InsightType classifica o tom de um insight
type InsightType string

const (
	InsightSuccess InsightType = "success"
	InsightWarning InsightType = "warning"
	InsightInfo    InsightType = "info"
)

// Priority indica a urgência de um insight
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Insight é uma mensagem descritiva sobre um padrão encontrado nos dados agregados
type Insight struct {
	Type     InsightType `json:"type"`
	Title    string      `json:"title"`
	Message  string      `json:"message"`
	Priority Priority    `json:"priority"`
}

// Strategy é uma lista ordenada de ações sugeridas
type Strategy struct {
	Title   string   `json:"title"`
	Actions []string `json:"actions"`
}

// Findings acumula insights e estratégias de uma única execução.
// É um valor: cada regra devolve o seu e o montador concatena na ordem fixa.
type Findings struct {
	Insights   []Insight
	Strategies []Strategy
}

// Append concatena outro conjunto de achados ao final deste
func (f Findings) Append(other Findings) Findings {
	out := Findings{
		Insights:   make([]Insight, 0, len(f.Insights)+len(other.Insights)),
		Strategies: make([]Strategy, 0, len(f.Strategies)+len(other.Strategies)),
	}
	out.Insights = append(append(out.Insights, f.Insights...), other.Insights...)
	out.Strategies = append(append(out.Strategies, f.Strategies...), other.Strategies...)
	return out
}

func (f Findings) IsEmpty() bool {
	return len(f.Insights) == 0 && len(f.Strategies) == 0
}
