// Package redis provides Redis client initialization with connection
// verification and retry logic, used for short-lived caches such as
// navigation match results.
package redis
