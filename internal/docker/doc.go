// Package docker wraps the Docker Engine SDK client for the daemon
// reachability probe used by the health command. It handles socket
// auto-detection across platforms so the probe works without any
// DOCKER_HOST configuration.
package docker
