package export

// Package export implements the export pipeline: it checks that a renderer is
// mounted, asks for media access, waits for the rendered PNG, writes it to the
// documents directory and registers it in a gallery album. Every attempt ends
// in exactly one user notice; only I/O and platform failures are logged.
