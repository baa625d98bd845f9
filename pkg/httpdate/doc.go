// Package httpdate parses and formats the date values carried by HTTP headers
// such as the Expires cookie attribute.
//
// Format always emits the preferred RFC 1123 layout in GMT:
//
//	Mon, 08 Feb 2016 07:28:00 GMT
//
// Parse accepts that layout plus the obsolete RFC 850 and ANSI C asctime
// layouts which HTTP/1.1 recipients are required to understand.
//
// Now and AddYears are the clock helpers used when a cookie lifetime has to be
// computed relative to the current time.
package httpdate
