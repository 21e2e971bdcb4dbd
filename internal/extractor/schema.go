package extractor

// ResponseSchema returns the Gemini response schema for the extracted order
// list: an array of objects with vendorName/productName/quantity required.
func ResponseSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "ARRAY",
		"items": map[string]interface{}{
			"type": "OBJECT",
			"properties": map[string]interface{}{
				"vendorName": map[string]interface{}{
					"type":        "STRING",
					"description": "외주처 이름",
				},
				"productName": map[string]interface{}{
					"type":        "STRING",
					"description": "품명",
				},
				"productCode": map[string]interface{}{
					"type":        "STRING",
					"description": "F열의 영문/숫자 제품코드",
				},
				"quantity": map[string]interface{}{
					"type":        "STRING",
					"description": "수량 (원문 그대로)",
				},
				"deliveryDate": map[string]interface{}{
					"type":        "STRING",
					"description": "납기요청일 (예: 12월 28일)",
				},
				"notes": map[string]interface{}{
					"type":        "STRING",
					"description": "특이사항",
				},
			},
			"required": []string{"vendorName", "productName", "quantity"},
		},
	}
}
