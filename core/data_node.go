/*
 * Copyright 2021. Go-Sharding Author All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 *  File author: Anders Xiao
 */

package core

import (
	"fmt"
	"strings"
)

// DataNode is one physical table on one data source, written as "ds0.t_order_0" in configuration.
type DataNode struct {
	DataSource string
	Table      string
}

func NewDataNode(dataSource string, table string) DataNode {
	return DataNode{
		DataSource: TrimAndLower(dataSource),
		Table:      TrimAndLower(table),
	}
}

func ParseDataNode(node string) (DataNode, error) {
	n := strings.TrimSpace(node)
	segments := strings.Split(n, ".")
	if len(segments) != 2 || strings.TrimSpace(segments[0]) == "" || strings.TrimSpace(segments[1]) == "" {
		return DataNode{}, fmt.Errorf("invalid data node format '%s', expected: <data source>.<table>", node)
	}
	return NewDataNode(segments[0], segments[1]), nil
}

func ParseDataNodes(nodes ...string) ([]DataNode, error) {
	result := make([]DataNode, 0, len(nodes))
	for _, n := range nodes {
		dn, err := ParseDataNode(n)
		if err != nil {
			return nil, err
		}
		result = append(result, dn)
	}
	return result, nil
}

func (n DataNode) String() string {
	return fmt.Sprint(n.DataSource, ".", n.Table)
}
