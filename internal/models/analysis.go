package models

// AnalysisRequest is one image handed to the inference service together with
// what the user declared about it.
type AnalysisRequest struct {
	ImagePath  string
	FoodName   string
	FoodWeight string
}

// ExpirationAnalysis holds the model's shelf life estimate.
type ExpirationAnalysis struct {
	EstimatedShelfLife    string `json:"estimatedShelfLife" validate:"required"`
	StorageRecommendation string `json:"storageRecommendation" validate:"required"`
}

// NutritionFacts are free-text quantities, e.g. "250 kcal".
type NutritionFacts struct {
	Calories string `json:"Calories" validate:"required"`
	Protein  string `json:"Protein" validate:"required"`
	Fat      string `json:"Fat" validate:"required"`
	Carbs    string `json:"Carbs" validate:"required"`
}

// FoodAnalysis is the structured answer of the inference service.
type FoodAnalysis struct {
	FoodNameIdentified string              `json:"foodNameIdentified" validate:"required"`
	ServingDetails     string              `json:"servingDetails,omitempty"`
	ExpirationAnalysis *ExpirationAnalysis `json:"expirationAnalysis" validate:"required"`
	NutritionFacts     *NutritionFacts     `json:"nutritionFacts" validate:"required"`
	PotentialAllergens []string            `json:"potentialAllergens" validate:"required"`
}

// AnalyzeInput is everything the orchestrator needs for one upload.
type AnalyzeInput struct {
	ImagePath          string
	Filename           string
	FoodName           string
	FoodWeight         string
	OriginAddress      string
	DestinationAddress string
}

// AnalysisReport merges the analyzer and router outcomes of one request.
// Analysis fields are flattened into the top level; Error replaces them when
// the analyzer failed.
type AnalysisReport struct {
	*FoodAnalysis
	Error      string       `json:"error,omitempty"`
	Filename   string       `json:"filename,omitempty"`
	RouteData  *RouteResult `json:"route_data,omitempty"`
	RouteError string       `json:"route_error,omitempty"`
}

// Failed reports whether the analysis part of the report is an error.
func (r *AnalysisReport) Failed() bool {
	return r.Error != ""
}
