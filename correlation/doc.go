// Package correlation implements the strategies deciding which
// metadata a message hands down to the messages generated while
// processing it, so that causally related messages can be traced
// across asynchronous, decoupled processing stages.
//
// You can read more about events correlation here:
// https://blog.arkency.com/correlation-id-and-causation-id-in-evented-systems/
package correlation
