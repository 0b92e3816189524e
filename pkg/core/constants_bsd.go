// +build darwin freebsd

package core

const nccs = 0x14
