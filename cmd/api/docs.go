package main

// @title Medi Assist API
// @version 1.0
// @description Symptom suggestions in Indian languages and a nearest-open-hospital finder. Suggestions are not medical advice.

// @host localhost:8080
// @BasePath /
// @schemes http https
