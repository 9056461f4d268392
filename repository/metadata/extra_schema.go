package metadata

import "encoding/json"

func toJSON(schema interface{}) string {
	bytes, err := json.Marshal(schema)
	if err != nil {
		panic(err)
	}
	return string(bytes)
}

/*
SchemaRiskHistogram 风险评分直方图，下标为评分（0~5），值为该评分下的实体数。
*/
type SchemaRiskHistogram [6]int

func (h *SchemaRiskHistogram) ToJSON() string {
	return toJSON(h)
}

func ParseRiskHistogram(raw string) (SchemaRiskHistogram, error) {
	var ret SchemaRiskHistogram
	err := json.Unmarshal([]byte(raw), &ret)
	return ret, err
}
