package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type payload struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

func TestParseJSONFenced(t *testing.T) {
	response := "```json\n{\"title\":\"X\",\"date\":\"01/01/2025\"}\n```"

	result, err := ParseJSON[payload](response)

	assert.NoError(t, err)
	assert.Equal(t, "X", result.Title)
	assert.Equal(t, "01/01/2025", result.Date)
}

func TestParseJSONSurroundingProse(t *testing.T) {
	response := "Sure! Here is the event you asked for:\n{\"title\":\"Vivah\",\"date\":\"02/02/2025\"}\nLet me know if you need anything else."

	result, err := ParseJSON[payload](response)

	assert.NoError(t, err)
	assert.Equal(t, "Vivah", result.Title)
}

func TestParseJSONNoBraces(t *testing.T) {
	_, err := ParseJSON[payload]("I could not find any event in this image.")

	assert.ErrorIs(t, err, ErrNoJSON)
}

func TestParseJSONMalformed(t *testing.T) {
	_, err := ParseJSON[payload](`{"title": "X", "date": }`)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoJSON)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences(`{"a":1}`))
}
