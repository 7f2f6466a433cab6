package anomaly

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Type categorizes why a flagged value looks suspicious.
type Type string

const (
	TypeVeryHigh   Type = "MUITO_ALTO"
	TypeHigh       Type = "ALTO"
	TypeVeryLow    Type = "MUITO_BAIXO"
	TypeLow        Type = "BAIXO"
	TypeOutlier    Type = "OUTLIER"
	TypeOutOfRange Type = "FORA_DO_HISTORICO"
)

// Amount is a monetary value tolerant of the loose typing in upstream feeds:
// JSON numbers, numeric strings, null and absent fields all decode. Anything
// non-numeric decodes to zero.
type Amount float64

// UnmarshalJSON implements the default policy for CARGAS_VALOR: missing,
// null or unparsable values become 0.
func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*a = 0
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			*a = 0
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*a = 0
			return nil
		}
		*a = Amount(parsed)
		return nil
	}
	var f float64
	if err := json.Unmarshal(trimmed, &f); err != nil {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

// Record is one shipment entry as received from the billing feed. Field keys
// follow the upstream cargo schema. Records are never mutated by the pipeline.
type Record struct {
	ID      any    `json:"ID_CARGAS"`
	Vehicle string `json:"CARGAS_VEICULO,omitempty"`
	Chassis string `json:"CARGAS_CHASSIS,omitempty"`
	Value   Amount `json:"CARGAS_VALOR"`
}

// Values extracts the monetary feature vector in record order.
func Values(records []Record) []float64 {
	out := make([]float64, len(records))
	for i, rec := range records {
		out[i] = float64(rec.Value)
	}
	return out
}

// Stats holds descriptive statistics for one batch's value set.
type Stats struct {
	Mean   float64 `json:"media"`
	Median float64 `json:"mediana"`
	StdDev float64 `json:"desvio_padrao"`
	Min    float64 `json:"minimo"`
	Max    float64 `json:"maximo"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
	IQR    float64 `json:"iqr"`
}

// HistoryStats summarizes a customer's prior record set.
type HistoryStats struct {
	Mean   float64 `json:"media_historica"`
	Median float64 `json:"mediana_historica"`
	Max    float64 `json:"max_historico"`
	Min    float64 `json:"min_historico"`
}

// Anomaly is one flagged record plus its assessment. Immutable once built.
// Absent vehicle/chassis descriptors serialize as empty rather than dropping
// the keys; the raw score is omitted for history-only findings, which carry
// none.
type Anomaly struct {
	ID         any     `json:"id"`
	Vehicle    string  `json:"veiculo"`
	Chassis    string  `json:"chassis"`
	Value      float64 `json:"valor"`
	Type       Type    `json:"tipo"`
	Severity   int     `json:"severidade"`
	Score      float64 `json:"score_anomalia,omitempty"`
	Suggestion string  `json:"sugestao"`
	Expected   float64 `json:"valor_esperado"`
}

// Result is the pipeline output for one analysis call. Anomalies keep the
// original record order, with history-only findings appended at the end.
// Results are deterministic: the same batch and scorer seed always produce
// the same Result.
type Result struct {
	Anomalies      []Anomaly     `json:"anomalias"`
	Stats          *Stats        `json:"estatisticas"`
	Total          int           `json:"total_cargas"`
	TotalAnomalies int           `json:"total_anomalias"`
	Percentage     float64       `json:"percentual_anomalias"`
	History        *HistoryStats `json:"comparacao_historico,omitempty"`
	Warning        string        `json:"aviso,omitempty"`
	Err            string        `json:"erro,omitempty"`
}
