/*
Copyright © 2023 - 2025 SUSE LLC

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

// provides a custom error interface and exit codes to use on the legacyboot CLI
package error

//
// Provided exit codes for the legacyboot CLI

// To make it easy to generate them you have to respect the structure:
//
// comment that explains the error
// const NamedConstant = ERRORCODE

// Error opening a disk image or device
const OpenDisk = 10

// Error enumerating host block devices
const EnumerateDisks = 11

// Wrong or missing command line arguments
const WrongArgs = 12

// Error setting up the logger output
const LoggerOptions = 13
