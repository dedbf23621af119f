/*
Package filter provides the building blocks shared by concrete trajectory filters.

Base carries the identity pair (type, name) and the lifecycle state, and guards
Update calls. DecodeParams reads a filter's parameters from a ports.ParamStore
and decodes them into a typed configuration struct.

A concrete filter embeds Base, decodes its parameters in Configure, and calls
Check at the top of Update:

	func (f *Smoother) Update(in message.Adapter, out *message.Adapter) error {
		if err := f.Check(in.Request.Trajectory); err != nil {
			return err
		}
		...
	}
*/
package filter
