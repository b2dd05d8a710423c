package metadomain

import (
	"math"
	"strconv"
	"strings"
)

// Numeric aceita os valores numéricos da Graph API, que chegam como string
// ("12.34"), número ou ausentes. Qualquer valor que não seja um número finito
// vira zero com Valid=false, a decodificação nunca falha.
type Numeric struct {
	Value float64
	Valid bool
}

// Num cria um Numeric válido
func Num(v float64) Numeric {
	return Numeric{Value: v, Valid: true}
}

func (n *Numeric) UnmarshalJSON(data []byte) error {
	*n = ParseNumeric(data)
	return nil
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.Value, 'f', -1, 64)), nil
}

// Float retorna o valor ou 0
func (n Numeric) Float() float64 {
	if !n.Valid {
		return 0
	}
	return n.Value
}

// Int trunca o valor, como o parseInt do dashboard
func (n Numeric) Int() int64 {
	if !n.Valid {
		return 0
	}
	return int64(n.Value)
}

// ParseNumeric interpreta um valor JSON bruto
func ParseNumeric(data []byte) Numeric {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return Numeric{}
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := jsonCodec.Unmarshal([]byte(raw), &s); err != nil {
			return Numeric{}
		}
		return ParseNumericString(s)
	}

	return ParseNumericString(raw)
}

// ParseNumericString interpreta um número em texto
func ParseNumericString(s string) Numeric {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Numeric{}
	}
	return Numeric{Value: v, Valid: true}
}
