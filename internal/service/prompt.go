package service

import (
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

func systemInstruction(foodName, foodWeight string) *genai.Content {
	text := "You are a professional Food Waste Reduction and Nutrition Analyst. " +
		"Your task is to analyze the provided food image and text inputs to generate a structured analysis. " +
		"You MUST estimate the shelf life, provide nutritional value, and list potential allergens. " +
		fmt.Sprintf("Base the analysis on the image, the user-provided name ('%s'), and the estimated weight/amount ('%s'). ", foodName, foodWeight) +
		"Provide the response ONLY as a JSON object that strictly adheres to the provided schema."

	return &genai.Content{Parts: []genai.Part{genai.Text(text)}}
}

func userPrompt(foodName, foodWeight string) string {
	return fmt.Sprintf("Analyze the food: %s. Estimated amount/weight: %s. Provide the requested structured analysis.", foodName, foodWeight)
}

var analysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"foodNameIdentified": {Type: genai.TypeString},
		"servingDetails":     {Type: genai.TypeString},
		"expirationAnalysis": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"estimatedShelfLife":    {Type: genai.TypeString},
				"storageRecommendation": {Type: genai.TypeString},
			},
			Required: []string{"estimatedShelfLife", "storageRecommendation"},
		},
		"nutritionFacts": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"Calories": {Type: genai.TypeString},
				"Protein":  {Type: genai.TypeString},
				"Fat":      {Type: genai.TypeString},
				"Carbs":    {Type: genai.TypeString},
			},
			Required: []string{"Calories", "Protein", "Fat", "Carbs"},
		},
		"potentialAllergens": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"foodNameIdentified", "expirationAnalysis", "nutritionFacts", "potentialAllergens"},
}
