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

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testConfig = `
rule:
  tables:
    t_order:
      actual-data-nodes:
        - ds${range(0,1)}.t_order_${[0,1]}
    t_order_item:
      actual-data-nodes:
        - ds${range(0,1)}.t_order_item_${[0,1]}
  binding-tables:
    - [t_order, t_order_item]
`

func executeForTest(t *testing.T, args ...string) (string, error) {
	dir, err := ioutil.TempDir("", "sharding-rewrite")
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "config.yaml")
	assert.Nil(t, ioutil.WriteFile(file, []byte(testConfig), 0644))

	out := &bytes.Buffer{}
	cmd := newRootCommand()
	cmd.SetOut(out)
	cmd.SetArgs(append([]string{"--config", file}, args...))
	err = cmd.Execute()
	return out.String(), err
}

func TestRewriteCommand(t *testing.T) {
	out, err := executeForTest(t,
		"--route", "ds0:t_order=t_order_0",
		"--route", "ds1:t_order=t_order_1",
		"SELECT * FROM t_order o JOIN t_order_item i ON o.order_id = i.order_id",
	)
	assert.Nil(t, err)
	assert.Equal(t,
		"SELECT * FROM t_order_0 o JOIN t_order_item_0 i ON o.order_id = i.order_id\n"+
			"SELECT * FROM t_order_1 o JOIN t_order_item_1 i ON o.order_id = i.order_id\n",
		out)
}

func TestRewriteCommandWithKey(t *testing.T) {
	out, err := executeForTest(t, "-k", "--route", "ds1:t_order=t_order_1", "SELECT * FROM t_order WHERE id=1")
	assert.Nil(t, err)
	assert.Equal(t, "ds1:t_order_1\tSELECT * FROM t_order_1 WHERE id=1\n", out)
}

func TestRewriteCommandErrors(t *testing.T) {
	_, err := executeForTest(t, "--route", "ds0:t_order", "SELECT * FROM t_order")
	assert.NotNil(t, err)

	_, err = executeForTest(t, "SELEC * FROM t_order")
	assert.NotNil(t, err)

	_, err = executeForTest(t)
	assert.NotNil(t, err)
}
