// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. A seed file is a flat list of attributes, one per generator
// parameter; HCL's JSON syntax is accepted for files ending in .json.
package hcl
