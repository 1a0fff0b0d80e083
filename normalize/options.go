/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package normalize

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithAliasResolver sets the resolver used for local handles.
// A nil resolver disables alias lookups.
func WithAliasResolver(r AliasResolver) Option {
	return func(n *Normalizer) { n.aliases = r }
}
