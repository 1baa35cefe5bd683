// Package converters exports a core.Tree as flat node and edge lists for
// renderers and external tools.
//
// Every node gets a key derived from its NodeID ("n<id>"), never from its
// label, because labels repeat across the tree. Edges are the parent→child
// pairs reached by a level-order walk from Root; mirror nodes appear as
// children of Root with Mirror set.
//
// The lists can be written as YAML (gopkg.in/yaml.v3) or TOML
// (github.com/BurntSushi/toml) through Encode.
package converters
