package predict

import "fmt"

// SchemaVersion identifies the feature set the deployed model expects.
// Bumping it means the model service was retrained with different inputs;
// the dashboard form is generated from this schema, so both sides move together.
const SchemaVersion = 2

// Features is the flat numeric object the inference endpoint consumes.
// The JSON names must stay bit-exact with the model service.
type Features struct {
	DOY            float64 `json:"DOY"`
	T2M            float64 `json:"T2M"`
	AllSkySfcSwDwn float64 `json:"ALLSKY_SFC_SW_DWN"`
	RH2M           float64 `json:"RH2M"`
	Latitude       float64 `json:"LATITUDE"`
	Longitude      float64 `json:"LONGITUDE"`
	HeatIndex      float64 `json:"HEAT_INDEX"`
	SolarStress    float64 `json:"SOLAR_STRESS"`
}

// Prediction is the model service's response. 1 means high fire risk.
type Prediction struct {
	RiesgoIncendio int     `json:"riesgo_incendio"`
	Probabilidad   float64 `json:"probabilidad"`
}

// High reports whether the prediction classifies the input as high risk.
func (p Prediction) High() bool {
	return p.RiesgoIncendio == 1
}

// FieldNames returns the schema's field names in form order.
func FieldNames() []string {
	return []string{
		"DOY",
		"T2M",
		"ALLSKY_SFC_SW_DWN",
		"RH2M",
		"LATITUDE",
		"LONGITUDE",
		"HEAT_INDEX",
		"SOLAR_STRESS",
	}
}

// FromValues builds Features from a name→value map covering every schema field.
func FromValues(values map[string]float64) (Features, error) {
	var f Features
	for _, name := range FieldNames() {
		value, ok := values[name]
		if !ok {
			return Features{}, fmt.Errorf("missing feature %s", name)
		}
		switch name {
		case "DOY":
			f.DOY = value
		case "T2M":
			f.T2M = value
		case "ALLSKY_SFC_SW_DWN":
			f.AllSkySfcSwDwn = value
		case "RH2M":
			f.RH2M = value
		case "LATITUDE":
			f.Latitude = value
		case "LONGITUDE":
			f.Longitude = value
		case "HEAT_INDEX":
			f.HeatIndex = value
		case "SOLAR_STRESS":
			f.SolarStress = value
		}
	}
	return f, nil
}
