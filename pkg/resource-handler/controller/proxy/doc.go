/*
Copyright 2025.

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

// Package proxy implements the controller for the Proxy resource.
//
// Proxies are stateless and run as a Deployment behind a load balancer
// Service. With TLS on, the Service publishes the TLS listeners and keeps the
// plaintext ones only if enablePlainTextWithTLS is set.
package proxy
