// Package ecode defines the business codes carried in API error bodies and
// their mapping to HTTP statuses.
//
//	ecode.Text(ecode.NothingFound)         // "Resource Not Found"
//	ecode.ToHTTPStatus(ecode.Unprocessable) // 422
//	ecode.NotExist("question")             // "question does not exist"
package ecode
