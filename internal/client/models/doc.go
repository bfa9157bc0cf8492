// Package models defines the records exchanged with the review/salary API.
// They mirror the server JSON and carry no behaviour beyond small helpers.
package models
