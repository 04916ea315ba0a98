// Package resp writes the JSON bodies of the FSND APIs.
//
// Success bodies are the handler's payload as-is, usually a map carrying
// "success": true. Failure bodies always have the same shape:
//
//	{
//	  "success": false,
//	  "error": 404,            // HTTP status
//	  "code": -404,            // business code from ecode
//	  "message": "Resource Not Found"
//	}
//
// Typical use in a gin handler:
//
//	resp.Success(c.Writer, gin.H{"success": true, "drinks": drinks})
//	resp.Fail(c.Writer, resp.NotFound(ecode.NotExist("drink")))
package resp
