package search

// BuildQuery assembles a boolean Elasticsearch query from a structured query.
// Technical and soft skills become match clauses; an overall experience
// requirement becomes a range clause with a gte bound. Fields the structured
// query does not carry simply contribute no clauses, so an empty input yields
// a match-everything bool query.
func BuildQuery(parsedQuery map[string]interface{}) map[string]interface{} {
	must := make([]interface{}, 0)

	if skills, ok := parsedQuery["skills"].(map[string]interface{}); ok {
		must = append(must, skillClauses("skills.technical_skills", skills["technical_skills"])...)
		must = append(must, skillClauses("skills.soft_skills", skills["soft_skills"])...)
	}

	if minExperience, ok := parsedQuery["total_experience"]; ok {
		must = append(must, map[string]interface{}{
			"range": map[string]interface{}{
				"total_experience": map[string]interface{}{"gte": minExperience},
			},
		})
	}

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": must,
			},
		},
	}
}

func skillClauses(field string, raw interface{}) []interface{} {
	skills, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	clauses := make([]interface{}, 0, len(skills))
	for _, skill := range skills {
		clauses = append(clauses, map[string]interface{}{
			"match": map[string]interface{}{field: skill},
		})
	}
	return clauses
}
