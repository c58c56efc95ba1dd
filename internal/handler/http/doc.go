// Package http implements the REST transport of the blog backend.
//
// It wires the chi router, the request handlers for users, posts and uploads,
// and the middleware chain in front of them: trace ids, access logging,
// request metrics, panic recovery, timeouts, CORS and the bearer-token access
// guard. Handlers decode requests, call the service layer and translate its
// errors into the status codes and JSON envelopes clients expect.
package http
