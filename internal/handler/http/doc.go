// Package http implements the REST transport of the sync server.
//
// It wires the routes a device uses during a sync cycle: the change
// manifest, the streamed readings download and the patient, reading and
// assessment endpoints. Authentication, request tracing, access logging and
// response compression are handled here before requests reach the service
// layer.
package http
